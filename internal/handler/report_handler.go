package handler

import (
	"net/http"
	"strconv"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reports/top-categories", h.topCategories)
}

func (h *ReportHandler) topCategories(c echo.Context) error {
	limit := usecase.DefaultTopCategoriesLimit
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	rows, err := h.uc.TopCategories(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
