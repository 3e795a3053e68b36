package handler

import (
	"net/http"
	"strconv"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type OrderCreateRequest struct {
	UserID int64              `json:"user_id" validate:"required,gt=0"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.POST("", h.create)
	g.GET("/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	items := make([]usecase.PlaceOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.PlaceOrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID: req.UserID,
		Items:  items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
