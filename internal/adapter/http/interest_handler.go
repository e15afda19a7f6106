package http

import (
	"errors"
	"net/http"

	domain "github.com/AashmanShukla3223/Financial-Golf/internal/domain/interest"
	"github.com/AashmanShukla3223/Financial-Golf/internal/usecase/interest"

	"github.com/labstack/echo/v4"
)

type InterestHandler struct{ uc *interest.Usecase }

func NewInterestHandler(uc *interest.Usecase) *InterestHandler { return &InterestHandler{uc: uc} }

// Fields stay untyped so strings and bools can be coerced like numbers.
type compoundInterestReq struct {
	Principal any `json:"principal"`
	Rate      any `json:"rate"`
	Years     any `json:"years"`
}

type scheduleReq struct {
	Principal  any `json:"principal"`
	Rate       any `json:"rate"`
	Years      any `json:"years"`
	CurrentAge any `json:"current_age"`
}

func (h *InterestHandler) CompoundInterest(c echo.Context) error {
	var req compoundInterestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Calculate(interest.CalculateInput(req))
	if err != nil {
		return interestError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InterestHandler) Schedule(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	q, err := h.uc.ParseSchedule(interest.ScheduleInput(req))
	if err != nil {
		return interestError(c, err)
	}
	if err := c.Validate(q); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Schedule(*q)
	if err != nil {
		return interestError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Map usecase errors → HTTP codes
func interestError(c echo.Context, err error) error {
	var ie *interest.InputError
	switch {
	case errors.As(err, &ie):
		details := make([]FieldError, 0, len(ie.Fields))
		for _, f := range ie.Fields {
			details = append(details, FieldError{Field: f.Field, Message: f.Message})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
	case errors.Is(err, domain.ErrNonFinite):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: domain.ErrNonFinite.Error()})
	}
	return err
}
