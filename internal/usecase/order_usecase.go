package usecase

import (
	"context"
	"time"

	"gasvision/internal/domain/model"
	repo "gasvision/internal/repository"
	"gasvision/internal/session"
)

type Clock interface {
	Now() time.Time
}

// OrderUsecase は顧客画面の操作。
// ordersRepo/customerRepoがnilなら保存先には書かない（セッションだけ）。
type OrderUsecase struct {
	orders    repo.OrderRepository
	customers repo.CustomerRepository
	clock     Clock
}

func NewOrderUsecase(orders repo.OrderRepository, customers repo.CustomerRepository, clock Clock) *OrderUsecase {
	return &OrderUsecase{orders: orders, customers: customers, clock: clock}
}

func (u *OrderUsecase) writeThrough() bool {
	return u.orders != nil && u.customers != nil
}

func (u *OrderUsecase) View(st session.State) View {
	return Render(st)
}

func (u *OrderUsecase) Navigate(st session.State, page string) (session.State, View, error) {
	return Navigate(st, page)
}

// PlaceOrder は注文を作ってセッションへ積み、保存先にも書く。
// 保存先に書けなかったら元の状態を返す。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, st session.State, in OrderInput) (session.State, View, error) {
	next, view, order, err := PlaceOrder(st, in, u.clock.Now())
	if err != nil {
		return st, View{}, err
	}

	if u.writeThrough() {
		if err := u.orders.Insert(ctx, order); err != nil {
			return st, View{}, storageError(err)
		}
		if err := u.customers.Upsert(ctx, model.Customer{
			Phone:     order.Phone,
			Name:      order.Customer,
			UpdatedAt: order.CreatedAt,
		}); err != nil {
			return st, View{}, storageError(err)
		}
	}

	return next, view, nil
}

func (u *OrderUsecase) History(st session.State, phone string) (session.State, View) {
	return LookupHistory(st, phone)
}
