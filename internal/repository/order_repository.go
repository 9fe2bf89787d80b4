package repository

import (
	"context"

	"gasvision/internal/domain/model"
)

// 注文コレクションの約束。件数が少ないので索引の前提は置かない。
type OrderRepository interface {
	Insert(ctx context.Context, order model.Order) error
	//登録順で全件
	FindAll(ctx context.Context) ([]model.Order, error)
}
