package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// X-Request-IDを振り、request_id付きのloggerをcontextに入れる。
// 以降は zerolog.Ctx(ctx) で取り出せる。
func RequestID(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			l := log.With().Str("request_id", id).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))
		},
	})
}
