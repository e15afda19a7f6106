package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CORS lets exactly one trusted origin call /api/*. Other paths get no CORS headers.
func CORS(origin string) echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		Skipper:      skipNonAPI,
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       600,
	})
}
