package repository

import (
	"context"

	"minishop/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	// 新規作成。emailが既にあればErrDuplicate（行は増えない）
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (model.User, error)
	// id順で全件
	List(ctx context.Context) ([]model.User, error)
	// 注文・明細ごと削除
	DeleteCascade(ctx context.Context, id int64) error
}
