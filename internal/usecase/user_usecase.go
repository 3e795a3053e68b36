package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"
)

type UserUsecase struct {
	users  repo.UserRepository
	hasher PasswordHasher
	clock  Clock
}

// DI
func NewUserUsecase(users repo.UserRepository, hasher PasswordHasher, clock Clock) *UserUsecase {
	return &UserUsecase{
		users:  users,
		hasher: hasher,
		clock:  clock,
	}
}

// POST /users/ の入力
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if email == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "email required")
	}
	if len(in.Password) < 6 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	// パスワードをハッシュ化（平文は保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    u.clock.Now(),
	}

	// email重複はDB側で弾く（同時登録でも1件だけ残る）
	if err := u.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "email already registered")
		}
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return user, nil
}

// id順
func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}
