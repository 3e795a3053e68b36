package repository

import (
	"context"

	"minishop/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// orders.total = SUM(quantity * unit_price)（明細なしなら0）
	RecalcTotal(ctx context.Context, orderID int64) (decimal.Decimal, error)

	DeleteCascade(ctx context.Context, orderID int64) error
}
