package repository

import (
	"context"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// INSERT ... ON CONFLICT (name) DO NOTHING
func (r *CategoryGormRepository) Create(ctx context.Context, c *model.Category) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(c)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrDuplicate
	}
	return nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return model.Category{}, mapError(err)
	}
	return c, nil
}

func (r *CategoryGormRepository) FindByName(ctx context.Context, name string) (model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		return model.Category{}, mapError(err)
	}
	return c, nil
}

func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := r.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&cats).Error; err != nil {
		return []model.Category{}, mapError(err)
	}
	return cats, nil
}

// 明細→商品→カテゴリの順で消して、明細を失った注文のtotalを直す
func (r *CategoryGormRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productIDs := tx.Model(&model.Product{}).Select("id").Where("category_id = ?", id)

		var affected []int64
		if err := tx.Model(&model.OrderItem{}).
			Distinct("order_id").
			Where("product_id IN (?)", productIDs).
			Pluck("order_id", &affected).Error; err != nil {
			return mapError(err)
		}

		if err := tx.Where("product_id IN (?)", productIDs).Delete(&model.OrderItem{}).Error; err != nil {
			return mapError(err)
		}
		if err := tx.Where("category_id = ?", id).Delete(&model.Product{}).Error; err != nil {
			return mapError(err)
		}

		res := tx.Delete(&model.Category{}, id)
		if res.Error != nil {
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		return recalcTotals(tx, affected)
	})
}
