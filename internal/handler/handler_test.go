package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"minishop/internal/handler"
	"minishop/internal/middleware"
	"minishop/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type routeRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

func newEcho(hs ...routeRegistrar) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(zerolog.Nop())
	e.Pre(echomw.RemoveTrailingSlash())
	for _, h := range hs {
		h.RegisterRoutes(e)
	}
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body=%s", rec.Body.String())
}

func mustDecodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var v handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body=%s", rec.Body.String())
	return v
}

func mustDecodeIDName(t *testing.T, rec *httptest.ResponseRecorder) handler.IDNameResponse {
	t.Helper()
	var v handler.IDNameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body=%s", rec.Body.String())
	return v
}

func mustDecodeIDNames(t *testing.T, rec *httptest.ResponseRecorder) []handler.IDNameResponse {
	t.Helper()
	var v []handler.IDNameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body=%s", rec.Body.String())
	return v
}
