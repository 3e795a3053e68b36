package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"
)

type CategoryUsecase struct {
	categories repo.CategoryRepository
}

func NewCategoryUsecase(categories repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

func (u *CategoryUsecase) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c := model.Category{Name: name}
	if err := u.categories.Create(ctx, &c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Category{}, NewHTTPError(http.StatusBadRequest, "category already exists")
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// name順
func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cats, nil
}
