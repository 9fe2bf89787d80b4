package model

import "time"

// 電話番号がキー。同じ番号で注文が来たら名前は上書き（後勝ち）。
type Customer struct {
	Phone     string    `gorm:"column:phone;primaryKey;type:varchar(32)" json:"phone" bson:"phone"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name" bson:"name"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at" bson:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
