package repository

import (
	"context"

	"minishop/internal/domain/model"
)

// 集計クエリ
type ReportRepository interface {
	// 売上順に最大limit件。注文がないカテゴリもrevenue=0で返す。
	TopCategoriesSales(ctx context.Context, limit int) ([]model.CategorySales, error)
}
