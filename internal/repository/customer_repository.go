package repository

import (
	"context"

	"gasvision/internal/domain/model"
)

// 顧客コレクションの約束。
type CustomerRepository interface {
	//電話番号で上書き保存（後勝ち）
	Upsert(ctx context.Context, customer model.Customer) error
	FindAll(ctx context.Context) ([]model.Customer, error)
}
