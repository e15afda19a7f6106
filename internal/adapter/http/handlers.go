package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	service string
	now     func() time.Time
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service, now: time.Now}
}

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResp{
		Status:  "ok",
		Service: h.service,
		Time:    h.now().UTC().Format(time.RFC3339Nano),
	})
}
