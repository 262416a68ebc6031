package logging

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RequestLoggerMiddleware returns an echo middleware that logs every HTTP
// request through the global zerolog logger. Server errors log at error
// level, everything else at info.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			event := log.Info()
			if c.Response().Status >= 500 {
				event = log.Error()
			}

			event.
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request handled")

			return err
		}
	}
}
