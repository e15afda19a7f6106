package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/"

func nowUTC() time.Time { return time.Now().UTC() }

// isAPI reports whether the request targets the /api/* surface.
func isAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, apiPrefix)
}

func skipNonAPI(c echo.Context) bool { return !isAPI(c) }

// buildKey names the counter for identifier in the window starting at start.
func buildKey(identifier string, start time.Time, window time.Duration) string {
	slot := start.UnixMilli() / window.Milliseconds()
	return "ratelimit:fingolf:" + strings.ToLower(identifier) + ":" + strconv.FormatInt(slot, 10)
}
