package validator

import (
	"errors"
	"strings"

	"gasvision/internal/domain/model"
)

var (
	// 名前・電話・住所のどれかが空
	ErrRequiredFields = errors.New("required fields missing")

	// 数量が範囲外
	ErrAmountOutOfRange = errors.New("amount out of range")

	// 配達時間帯が不明
	ErrInvalidDeliveryTime = errors.New("invalid delivery time")

	// ステータスが不明（取込時）
	ErrInvalidStatus = errors.New("invalid status")
)

// OrderFields は注文の入力。前後の空白は呼び出し側で落とさなくてよい。
type OrderFields struct {
	Customer     string
	Phone        string
	Location     string
	AmountKg     int
	DeliveryTime model.DeliveryTime
}

// 注文フォームの入力を検証
func ValidateOrderFields(f OrderFields) error {
	// 必須チェック
	if strings.TrimSpace(f.Customer) == "" ||
		strings.TrimSpace(f.Phone) == "" ||
		strings.TrimSpace(f.Location) == "" {
		return ErrRequiredFields
	}

	if f.AmountKg < model.MinAmountKg || f.AmountKg > model.MaxAmountKg {
		return ErrAmountOutOfRange
	}

	if !f.DeliveryTime.Valid() {
		return ErrInvalidDeliveryTime
	}

	return nil
}

// 取り込んだ注文を検証。IDとステータスも見る。
func ValidateStoredOrder(o model.Order) error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrRequiredFields
	}
	if o.Status != model.OrderStatusConfirmed {
		return ErrInvalidStatus
	}
	return ValidateOrderFields(OrderFields{
		Customer:     o.Customer,
		Phone:        o.Phone,
		Location:     o.Location,
		AmountKg:     o.AmountKg,
		DeliveryTime: o.DeliveryTime,
	})
}
