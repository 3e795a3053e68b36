package repository

import (
	"context"
	"fmt"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order *model.Order) error {
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	if !order.Status.Valid() {
		return fmt.Errorf("%w: status %q", repo.ErrConstraintViolated, order.Status)
	}
	// 明細はCreateBulkで別に入れる
	if err := r.db.WithContext(ctx).Omit("Items").Create(order).Error; err != nil {
		return mapError(err)
	}
	return nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&o, orderID).Error
	if err != nil {
		return model.Order{}, mapError(err)
	}
	return o, nil
}

// recalc_order_total
func (r *OrderGormRepository) RecalcTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Order{}).Where("id = ?", orderID).Count(&n).Error; err != nil {
			return mapError(err)
		}
		if n == 0 {
			return repo.ErrNotFound
		}

		if err := recalcTotals(tx, []int64{orderID}); err != nil {
			return err
		}

		var o model.Order
		if err := tx.Select("total").First(&o, orderID).Error; err != nil {
			return mapError(err)
		}
		total = o.Total
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// 明細→注文の順で消す（FKのCASCADEに頼らない）
func (r *OrderGormRepository) DeleteCascade(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
			return mapError(err)
		}
		res := tx.Delete(&model.Order{}, orderID)
		if res.Error != nil {
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

// orders.total = COALESCE(SUM(quantity * unit_price), 0)
// 呼び出し側のトランザクション内で実行する。
func recalcTotals(tx *gorm.DB, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}

	sum := tx.Session(&gorm.Session{NewDB: true}).
		Model(&model.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity * order_items.unit_price), 0)").
		Where("order_items.order_id = orders.id")

	err := tx.Model(&model.Order{}).
		Where("id IN ?", orderIDs).
		Update("total", sum).Error
	return mapError(err)
}
