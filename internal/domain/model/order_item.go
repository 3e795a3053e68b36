package model

import "github.com/shopspring/decimal"

// 注文明細
// unit_priceは購入時点の商品価格のスナップショット。
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;uniqueIndex:uq_order_items_order_product" json:"order_id"`
	ProductID int64           `gorm:"not null;uniqueIndex:uq_order_items_order_product;index:idx_order_items_product" json:"product_id"`
	Quantity  int64           `gorm:"not null;check:chk_order_items_quantity_pos,quantity > 0" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

// quantity × unit_price
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
