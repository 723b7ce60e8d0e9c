package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request-scoped zerolog logger to the request context and
// emits one line per completed request.
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("req_id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler commit the response first
				c.Error(err)
			}

			l.Info().
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Int64("bytes_out", c.Response().Size).
				Msg("Request handled")

			return nil
		}
	}
}
