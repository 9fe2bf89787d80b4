package session

import "gasvision/internal/domain/model"

// State は1セッション分の状態。他のセッションからは見えない。
type State struct {
	Page      model.Page        `json:"page"`
	Orders    []model.Order     `json:"orders"`
	Customers map[string]string `json:"customers"` // phone -> 表示名
}

func New() State {
	return State{
		Page:      model.PageHome,
		Orders:    []model.Order{},
		Customers: map[string]string{},
	}
}

// Clone は元を書き換えないためのコピー
func (s State) Clone() State {
	out := State{
		Page:      s.Page,
		Orders:    make([]model.Order, len(s.Orders)),
		Customers: make(map[string]string, len(s.Customers)),
	}
	copy(out.Orders, s.Orders)
	for k, v := range s.Customers {
		out.Customers[k] = v
	}
	if out.Page == "" {
		out.Page = model.PageHome
	}
	return out
}

// phoneの注文を登録順で返す
func (s State) OrdersFor(phone string) []model.Order {
	out := make([]model.Order, 0)
	for _, o := range s.Orders {
		if o.Phone == phone {
			out = append(out, o)
		}
	}
	return out
}

// 直近n件（古い順）
func (s State) RecentOrders(n int) []model.Order {
	if len(s.Orders) <= n {
		return append([]model.Order{}, s.Orders...)
	}
	return append([]model.Order{}, s.Orders[len(s.Orders)-n:]...)
}
