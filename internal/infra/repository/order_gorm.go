package repository

import (
	"context"
	"fmt"

	"gasvision/internal/domain/model"
	repo "gasvision/internal/repository"

	"gorm.io/gorm"
)

// 初回に接続するハンドル（db.Handle[*gorm.DB]）
type GormAcquirer interface {
	Acquire(ctx context.Context) (*gorm.DB, error)
}

type OrderGormRepository struct {
	db GormAcquirer
}

func NewOrderGormRepository(db GormAcquirer) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Insert(ctx context.Context, order model.Order) error {
	gdb, err := r.db.Acquire(ctx)
	if err != nil {
		return unavailable(err)
	}

	//内部IDは保存先が振る
	order.RowID = 0
	if err := gdb.WithContext(ctx).Create(&order).Error; err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *OrderGormRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	gdb, err := r.db.Acquire(ctx)
	if err != nil {
		return []model.Order{}, unavailable(err)
	}

	var items []model.Order
	if err := gdb.WithContext(ctx).Order("row_id asc").Find(&items).Error; err != nil {
		return []model.Order{}, unavailable(err)
	}
	return items, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", repo.ErrUnavailable, err)
}
