package handler

import (
	"net/http"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/categories")
	g.POST("", h.create)
	g.GET("", h.list)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req CategoryCreateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, IDNameResponse{ID: cat.ID, Name: cat.Name})
}

func (h *CategoryHandler) list(c echo.Context) error {
	cats, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]IDNameResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, IDNameResponse{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(http.StatusOK, out)
}
