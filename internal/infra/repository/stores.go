package repository

import (
	"context"
	"fmt"

	"gasvision/internal/config"
	"gasvision/internal/infra/db"
	repo "gasvision/internal/repository"
)

// Stores はSTORE_DRIVERで選んだ実装の組。接続は最初の利用時に張る。
type Stores struct {
	Orders    repo.OrderRepository
	Customers repo.CustomerRepository
	close     func(ctx context.Context) error
}

func NewStores(cfg config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		h := db.NewMongoHandle(cfg)
		return &Stores{
			Orders:    NewOrderMongoRepository(h),
			Customers: NewCustomerMongoRepository(h),
			close:     h.Close,
		}, nil
	case config.StorePostgres, config.StoreSQLite:
		h := db.NewGormHandle(cfg)
		return &Stores{
			Orders:    NewOrderGormRepository(h),
			Customers: NewCustomerGormRepository(h),
			close:     h.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
