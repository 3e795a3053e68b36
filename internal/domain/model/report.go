package model

import "github.com/shopspring/decimal"

// カテゴリ別売上（top_categories_sales の1行）
type CategorySales struct {
	CategoryID  int64           `gorm:"column:category_id" json:"id"`
	Name        string          `gorm:"column:name" json:"name"`
	Revenue     decimal.Decimal `gorm:"column:revenue" json:"revenue"`
	OrdersCount int64           `gorm:"column:orders_count" json:"orders_count"`
}
