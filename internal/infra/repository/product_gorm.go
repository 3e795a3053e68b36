package repository

import (
	"context"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return model.Product{}, mapError(err)
	}
	return p, nil
}

// 登録順でskip/limitの窓を返す
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("id asc").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, mapError(err)
	}
	return products, nil
}

// 商品削除（明細も消す）
func (r *ProductGormRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var affected []int64
		if err := tx.Model(&model.OrderItem{}).
			Distinct("order_id").
			Where("product_id = ?", id).
			Pluck("order_id", &affected).Error; err != nil {
			return mapError(err)
		}

		if err := tx.Where("product_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return mapError(err)
		}

		res := tx.Delete(&model.Product{}, id)
		if res.Error != nil {
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		return recalcTotals(tx, affected)
	})
}
