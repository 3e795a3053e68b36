package repository

import (
	"context"

	"minishop/internal/domain/model"

	"gorm.io/gorm"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// top_categories_sales
// LEFT JOINなので注文のないカテゴリもrevenue=0, orders_count=0で並ぶ。
func (r *ReportGormRepository) TopCategoriesSales(ctx context.Context, limit int) ([]model.CategorySales, error) {
	rows := []model.CategorySales{}
	err := r.db.WithContext(ctx).
		Table("categories AS c").
		Select(`c.id AS category_id,
			c.name AS name,
			COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue,
			COUNT(DISTINCT o.id) AS orders_count`).
		Joins("LEFT JOIN products p ON p.category_id = c.id").
		Joins("LEFT JOIN order_items oi ON oi.product_id = p.id").
		Joins("LEFT JOIN orders o ON o.id = oi.order_id").
		Group("c.id, c.name").
		Order("revenue DESC").
		Order("c.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return []model.CategorySales{}, mapError(err)
	}
	return rows, nil
}
