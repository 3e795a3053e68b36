package repository

import (
	"context"

	"minishop/internal/domain/model"
)

type CategoryRepository interface {
	// nameが既にあればErrDuplicate
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindByName(ctx context.Context, name string) (model.Category, error)
	// name順で全件
	List(ctx context.Context) ([]model.Category, error)
	// 商品・明細ごと削除し、影響した注文のtotalを再計算
	DeleteCascade(ctx context.Context, id int64) error
}
