package model

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(150);not null;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_products_price_nonneg,price >= 0" json:"price"`
	Stock       int64           `gorm:"not null;default:0;check:chk_products_stock_nonneg,stock >= 0" json:"stock"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
