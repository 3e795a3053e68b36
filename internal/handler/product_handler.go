package handler

import (
	"net/http"
	"strconv"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /products のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// priceは数値でも文字列でも受け付ける（decimal）
type ProductCreateRequest struct {
	Name        string           `json:"name" validate:"required,max=150"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0,lte=99999999.99"`
	Stock       *int64           `json:"stock" validate:"required,gte=0"`
	CategoryID  int64            `json:"category_id" validate:"required,gt=0"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/products")
	g.POST("", h.create)
	g.GET("", h.list)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	in := usecase.CreateProductInput{
		Name:       req.Name,
		Price:      *req.Price,
		Stock:      *req.Stock,
		CategoryID: req.CategoryID,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, IDNameResponse{ID: p.ID, Name: p.Name})
}

func (h *ProductHandler) list(c echo.Context) error {
	// skip（default 0）
	skip := usecase.DefaultProductSkip
	if v := c.QueryParam("skip"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid skip"})
		}
		skip = s
	}

	// limit（default 100）
	limit := usecase.DefaultProductLimit
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	items, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	out := make([]IDNameResponse, 0, len(items))
	for _, p := range items {
		out = append(out, IDNameResponse{ID: p.ID, Name: p.Name})
	}
	return c.JSON(http.StatusOK, out)
}
