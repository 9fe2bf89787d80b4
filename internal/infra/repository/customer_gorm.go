package repository

import (
	"context"

	"gasvision/internal/domain/model"

	"gorm.io/gorm/clause"
)

type CustomerGormRepository struct {
	db GormAcquirer
}

func NewCustomerGormRepository(db GormAcquirer) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// 同じphoneがあればname/updated_atを上書き
func (r *CustomerGormRepository) Upsert(ctx context.Context, customer model.Customer) error {
	gdb, err := r.db.Acquire(ctx)
	if err != nil {
		return unavailable(err)
	}

	err = gdb.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&customer).Error
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *CustomerGormRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	gdb, err := r.db.Acquire(ctx)
	if err != nil {
		return []model.Customer{}, unavailable(err)
	}

	var items []model.Customer
	if err := gdb.WithContext(ctx).Order("phone asc").Find(&items).Error; err != nil {
		return []model.Customer{}, unavailable(err)
	}
	return items, nil
}
