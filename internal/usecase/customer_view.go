package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gasvision/internal/domain/model"
	"gasvision/internal/session"
	"gasvision/internal/validator"
)

// 顧客画面の各操作は (今の状態, 入力) -> (次の状態, 表示) の関数にする。
// ここの関数は保存先に触らない。

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

const recentOrdersShown = 3

type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

type HistoryView struct {
	Phone        string        `json:"phone"`
	Found        bool          `json:"found"`
	CustomerName string        `json:"customer_name,omitempty"`
	Summary      *Consumption  `json:"summary,omitempty"`
	PredictedKg  float64       `json:"predicted_next_kg_rounded,omitempty"`
	Predicted    string        `json:"predicted_next,omitempty"`
	Orders       []model.Order `json:"orders,omitempty"`
}

// View は1回の操作で返す画面の中身
type View struct {
	Page         model.Page    `json:"page"`
	Notices      []Notice      `json:"notices"`
	Home         *HomeContent  `json:"home,omitempty"`
	Confirmation *model.Order  `json:"confirmation,omitempty"`
	RecentOrders []model.Order `json:"recent_orders,omitempty"`
	History      *HistoryView  `json:"history,omitempty"`
	Footer       Footer        `json:"footer"`
}

// 注文フォームの入力。AmountKg/DeliveryTimeは省略時に既定値。
type OrderInput struct {
	CustomerName string
	Phone        string
	AmountKg     *int
	Location     string
	DeliveryTime string
}

// Render は今のページをそのまま表示する。
func Render(st session.State) View {
	switch st.Page {
	case model.PageOrder:
		return orderPageView(st)
	case model.PageHistory:
		return View{
			Page: model.PageHistory,
			Notices: []Notice{{
				Level:   NoticeInfo,
				Message: "Enter your phone number to view your gas usage history and predictions.",
			}},
			Footer: footer,
		}
	default:
		hc := homeContent
		return View{Page: model.PageHome, Notices: []Notice{}, Home: &hc, Footer: footer}
	}
}

func Navigate(st session.State, page string) (session.State, View, error) {
	p := model.Page(strings.TrimSpace(page))
	if !p.Valid() {
		return st, View{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	next := st.Clone()
	next.Page = p
	return next, Render(next), nil
}

// PlaceOrder は入力を検証して注文を1件追加する。
// 検証に失敗したら状態は変えない。
func PlaceOrder(st session.State, in OrderInput, now time.Time) (session.State, View, model.Order, error) {
	order, err := buildOrder(in)
	if err != nil {
		return st, View{}, model.Order{}, err
	}

	next := st.Clone()
	order.ID = model.FormatOrderID(len(next.Orders) + 1)
	order.CreatedAt = now
	order.Status = model.OrderStatusConfirmed

	next.Orders = append(next.Orders, order)
	next.Customers[order.Phone] = order.Customer
	next.Page = model.PageOrder

	v := orderPageView(next)
	confirmed := order
	v.Confirmation = &confirmed
	v.Notices = append(v.Notices,
		Notice{Level: NoticeSuccess, Message: fmt.Sprintf("Order Confirmed! Order ID: %s. SMS confirmation sent to %s", order.ID, order.Phone)},
		Notice{Level: NoticeInfo, Message: "Delivery Tracking: Your order is being prepared and will be dispatched within 2 hours."},
	)
	return next, v, order, nil
}

// LookupHistory は電話番号で履歴と予測を出す。
// 知らない番号は「見つからない」表示でエラーにはしない。
func LookupHistory(st session.State, phone string) (session.State, View) {
	next := st.Clone()
	next.Page = model.PageHistory

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return next, Render(next)
	}

	v := View{Page: model.PageHistory, Notices: []Notice{}, Footer: footer}

	name, ok := next.Customers[phone]
	if !ok {
		v.History = &HistoryView{Phone: phone, Found: false}
		v.Notices = append(v.Notices, Notice{
			Level:   NoticeWarning,
			Message: "Phone number not found. Please place an order first to create your usage history.",
		})
		return next, v
	}

	orders := next.OrdersFor(phone)
	if len(orders) == 0 {
		v.History = &HistoryView{Phone: phone, Found: true, CustomerName: name}
		v.Notices = append(v.Notices, Notice{
			Level:   NoticeInfo,
			Message: fmt.Sprintf("No order history found for %s. Place your first order to see usage data.", name),
		})
		return next, v
	}

	sum := Summarize(orders)
	v.History = &HistoryView{
		Phone:        phone,
		Found:        true,
		CustomerName: name,
		Summary:      &sum,
		PredictedKg:  sum.PredictedRounded(),
		Predicted:    sum.PredictedDisplay(),
		Orders:       orders,
	}
	return next, v
}

func orderPageView(st session.State) View {
	return View{
		Page:         model.PageOrder,
		Notices:      []Notice{},
		RecentOrders: st.RecentOrders(recentOrdersShown),
		Footer:       footer,
	}
}

func buildOrder(in OrderInput) (model.Order, error) {
	amount := model.DefaultAmountKg
	if in.AmountKg != nil {
		amount = *in.AmountKg
	}

	dt := model.DeliveryMorning
	if v := strings.TrimSpace(in.DeliveryTime); v != "" {
		dt = model.DeliveryTime(v)
	}

	o := model.Order{
		Customer:     strings.TrimSpace(in.CustomerName),
		Phone:        strings.TrimSpace(in.Phone),
		AmountKg:     amount,
		Location:     strings.TrimSpace(in.Location),
		DeliveryTime: dt,
	}

	err := validator.ValidateOrderFields(validator.OrderFields{
		Customer:     o.Customer,
		Phone:        o.Phone,
		Location:     o.Location,
		AmountKg:     o.AmountKg,
		DeliveryTime: o.DeliveryTime,
	})
	switch {
	case err == nil:
		return o, nil
	case errors.Is(err, validator.ErrRequiredFields):
		return model.Order{}, NewHTTPError(http.StatusBadRequest, MsgRequiredFields)
	case errors.Is(err, validator.ErrAmountOutOfRange):
		return model.Order{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("amount must be between %d and %d", model.MinAmountKg, model.MaxAmountKg))
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid delivery_time")
	}
}
