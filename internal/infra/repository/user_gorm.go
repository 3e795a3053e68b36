package repository

import (
	"context"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) repo.UserRepository {
	return &userGormRepository{db: db}
}

// emailが既にあれば何もせずErrDuplicate
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(user)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrDuplicate
	}
	return nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return model.User{}, mapError(err)
	}
	return u, nil
}

func (r *userGormRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return []model.User{}, mapError(err)
	}
	return users, nil
}

// 明細→注文→ユーザーの順で消す
func (r *userGormRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderIDs := tx.Model(&model.Order{}).Select("id").Where("user_id = ?", id)

		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
			return mapError(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Order{}).Error; err != nil {
			return mapError(err)
		}

		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}
