package usecase

import (
	"context"
	"net/http"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"
)

const DefaultTopCategoriesLimit = 5

type ReportUsecase struct {
	reports repo.ReportRepository
}

func NewReportUsecase(reports repo.ReportRepository) *ReportUsecase {
	return &ReportUsecase{reports: reports}
}

func (u *ReportUsecase) TopCategories(ctx context.Context, limit int) ([]model.CategorySales, error) {
	if limit < 1 {
		return []model.CategorySales{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	rows, err := u.reports.TopCategoriesSales(ctx, limit)
	if err != nil {
		return []model.CategorySales{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}
