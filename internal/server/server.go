package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"minishop/internal/middleware"
	"minishop/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// middleware・validator・ルートを組み立てたechoを返す
func New(log zerolog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(log)

	// /users と /users/ を同じルートにする
	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID(log))
	e.Use(middleware.RequestLogger(log))

	RegisterRoutes(e, h)
	return e
}

// ctxがキャンセルされたらgracefulに止める
func Start(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
