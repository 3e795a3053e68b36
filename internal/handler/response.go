package handler

import (
	"net/http"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// 作成・一覧のレスポンス
type IDNameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// Bind → Validate。失敗したら400を書いてfalse
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		msg := "invalid body"
		if he, ok := err.(*echo.HTTPError); ok {
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}
	return true, nil
}
