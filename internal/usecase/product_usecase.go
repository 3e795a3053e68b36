package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	DefaultProductSkip  = 0
	DefaultProductLimit = 100
)

type ProductUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository, categories repo.CategoryRepository) *ProductUsecase {
	return &ProductUsecase{
		products:   products,
		categories: categories,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	CategoryID  int64
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	//カテゴリの存在確認
	if in.CategoryID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p := model.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	}
	if err := u.products.Create(ctx, &p); err != nil {
		switch {
		// 確認後にカテゴリが消えた場合もFKで弾かれる
		case errors.Is(err, repo.ErrInvalidReference):
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
		case errors.Is(err, repo.ErrConstraintViolated):
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product")
		default:
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return p, nil
}

// GET /products/ の入力
type ListProductsInput struct {
	Skip  int
	Limit int
}

// limitの上限は設けない
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if in.Skip < 0 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if in.Limit < 0 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, err := u.products.List(ctx, repo.ProductListQuery{
		Offset: in.Skip,
		Limit:  in.Limit,
	})
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
