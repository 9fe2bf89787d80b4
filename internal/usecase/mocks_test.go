package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"gasvision/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Insert(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) FindAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Upsert(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) FindAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]model.Customer)
	return customers, args.Error(1)
}

// =====================
// Helpers
// =====================

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func intPtr(v int) *int { return &v }

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func orderAt(id, phone string, amount int, at time.Time) model.Order {
	return model.Order{
		ID:           id,
		Customer:     "Customer " + phone,
		Phone:        phone,
		AmountKg:     amount,
		Location:     "Nairobi",
		DeliveryTime: model.DeliveryMorning,
		CreatedAt:    at,
		Status:       model.OrderStatusConfirmed,
	}
}
