package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders}
}

type PlaceOrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	UserID int64
	Items  []PlaceOrderItemInput
}

type OrderItemOutput struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Status    string            `json:"status"`
	Total     decimal.Decimal   `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// 注文作成
// 明細の単価は商品価格のスナップショット。totalは同じTx内で再計算する。
// 在庫は引き当てない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if in.UserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}

	// (order, product) は一意なので同じ商品は1行まで
	seen := make(map[int64]struct{}, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if it.Quantity <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
		}
		if _, dup := seen[it.ProductID]; dup {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("duplicate product_id %d", it.ProductID))
		}
		seen[it.ProductID] = struct{}{}
	}

	var out OrderOutput

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Users().FindByID(ctx, in.UserID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "invalid user_id")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//スナップショット
		items := make([]model.OrderItem, 0, len(in.Items))
		sum := decimal.Zero
		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid product_id %d", it.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
			})
			sum = sum.Add(items[len(items)-1].Subtotal())
		}
		if sum.GreaterThan(model.MaxAmount) {
			return NewHTTPError(http.StatusBadRequest, "order total too large")
		}

		order := model.Order{
			UserID: in.UserID,
			Status: model.OrderStatusPending,
			Total:  decimal.Zero,
		}
		if err := r.Orders().Create(ctx, &order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, order.ID, items); err != nil {
			if errors.Is(err, repo.ErrDuplicate) || errors.Is(err, repo.ErrInvalidReference) || errors.Is(err, repo.ErrConstraintViolated) {
				return NewHTTPError(http.StatusBadRequest, "invalid items")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		total, err := r.Orders().RecalcTotal(ctx, order.ID)
		if errors.Is(err, repo.ErrConstraintViolated) {
			return NewHTTPError(http.StatusBadRequest, "order total too large")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		order.Total = total
		order.Items = items

		out = toOrderOutput(order)
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return OrderOutput{}, err
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o), nil
}

// 手動でtotalを直す（dbctl recalc-order-total）
func (u *OrderUsecase) RecalcOrderTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	if orderID <= 0 {
		return decimal.Zero, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	total, err := u.orders.RecalcTotal(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return decimal.Zero, NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrConstraintViolated) {
		return decimal.Zero, NewHTTPError(http.StatusBadRequest, "order total too large")
	}
	if err != nil {
		return decimal.Zero, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return total, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(o.Items))
	for _, it := range o.Items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
		})
	}

	return OrderOutput{
		ID:        o.ID,
		UserID:    o.UserID,
		Status:    string(o.Status),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
}
