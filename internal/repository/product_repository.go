package repository

import (
	"context"

	"minishop/internal/domain/model"
)

// 一覧のウィンドウ（skip/limit）
type ProductListQuery struct {
	Offset int
	Limit  int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// category_idが存在しなければErrInvalidReference
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// id昇順（登録順）
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	// 明細ごと削除し、影響した注文のtotalを再計算
	DeleteCascade(ctx context.Context, id int64) error
}
