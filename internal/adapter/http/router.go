package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Health   *HealthHandler
	Interest *InterestHandler
	Quiz     *QuizHandler
}

// NewRouter builds the echo instance. extra runs after Logger/Recover and
// before routing to handlers (CORS, rate limiting).
func NewRouter(h Handlers, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.JSONSerializer = strictJSONSerializer{}
	// loopback only; forwarded headers are not trusted
	e.IPExtractor = echo.ExtractIPDirect()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(extra...)

	// routes
	e.GET("/health", h.Health.Health)

	api := e.Group("/api")
	api.POST("/compound-interest", h.Interest.CompoundInterest)
	api.POST("/compound-interest/schedule", h.Interest.Schedule)
	api.GET("/quiz", h.Quiz.ListQuestions)
	api.POST("/quiz/:question_id/answer", h.Quiz.AnswerQuestion)

	return e
}
