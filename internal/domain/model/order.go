package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// decimal(10,2) に入る最大の金額
var MaxAmount = decimal.RequireFromString("99999999.99")

// chk_orders_status と同じ集合
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// totalは明細から再計算する値（直接書き換えない）
type Order struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64           `gorm:"not null;index" json:"user_id"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null;default:'PENDING';check:chk_orders_status,status IN ('PENDING','PAID','CANCELLED')" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
