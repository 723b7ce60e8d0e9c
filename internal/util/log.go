package util

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LogFromContext returns the request-scoped logger from ctx, falling back to
// a disabled logger when none is attached.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// LogFromEchoContext returns the request-scoped logger of an echo context.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}

// LogLevelFromString parses a zerolog level name, defaulting to info on
// unknown input.
func LogLevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
