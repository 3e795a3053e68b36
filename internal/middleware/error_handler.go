package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// echo自身のエラー（404/405/bind失敗など）も {"error": "..."} で返す
func HTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := "internal error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if he.Internal != nil {
				log.Debug().Err(he.Internal).Msg("http error")
			}
			switch m := he.Message.(type) {
			case string:
				msg = m
			case error:
				msg = m.Error()
			default:
				msg = fmt.Sprint(m)
			}
		} else {
			log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("unhandled error")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, errorJSON(msg))
		}
		if werr != nil {
			log.Error().Err(werr).Msg("write error response")
		}
	}
}
