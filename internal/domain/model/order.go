package model

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	// 作成時に固定で入る。遷移はしない。
	OrderStatusConfirmed OrderStatus = "Confirmed"
)

const (
	OrderIDPrefix = "GV"

	MinAmountKg     = 0
	MaxAmountKg     = 100
	DefaultAmountKg = 13

	// 画面・CSVで使う日時の形式（分まで）
	OrderDateLayout = "2006-01-02 15:04"
)

// 注文。RowIDは保存先の内部IDなので外には出さない。
type Order struct {
	RowID        int64        `gorm:"column:row_id;primaryKey;autoIncrement" json:"-" bson:"-"`
	ID           string       `gorm:"column:id;type:varchar(16);not null;index" json:"id" bson:"id"`
	Customer     string       `gorm:"column:customer;type:varchar(255);not null" json:"customer" bson:"customer"`
	Phone        string       `gorm:"column:phone;type:varchar(32);not null;index" json:"phone" bson:"phone"`
	AmountKg     int          `gorm:"column:amount;not null" json:"amount" bson:"amount"`
	Location     string       `gorm:"column:location;type:text;not null" json:"location" bson:"location"`
	DeliveryTime DeliveryTime `gorm:"column:delivery_time;type:varchar(32);not null" json:"delivery_time" bson:"delivery_time"`
	CreatedAt    time.Time    `gorm:"column:date;not null;index" json:"date" bson:"date"`
	Status       OrderStatus  `gorm:"column:status;type:varchar(20);not null;index" json:"status" bson:"status"`
}

func (Order) TableName() string { return "orders" }

// n番目（1始まり）の注文ID。GV0001, GV0002 ...
func FormatOrderID(n int) string {
	return fmt.Sprintf("%s%04d", OrderIDPrefix, n)
}

func (o Order) DateString() string {
	return o.CreatedAt.Format(OrderDateLayout)
}
