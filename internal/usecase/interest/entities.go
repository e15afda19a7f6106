package interest

import (
	"fmt"
	"strings"
)

// CalculateInput carries raw JSON values; any of them may be nil (absent or null).
type CalculateInput struct {
	Principal any `json:"principal"`
	Rate      any `json:"rate"`
	Years     any `json:"years"`
}

type ScheduleInput struct {
	Principal  any `json:"principal"`
	Rate       any `json:"rate"`
	Years      any `json:"years"`
	CurrentAge any `json:"current_age"`
}

// ScheduleQuery is a coerced ScheduleInput, ready for validation.
type ScheduleQuery struct {
	Principal  float64 `json:"principal"`
	Rate       float64 `json:"rate"`
	Years      int     `json:"years"       validate:"gte=0,lte=200"`
	CurrentAge *int    `json:"current_age" validate:"omitempty,gte=0"`
}

type ResultDTO struct {
	Principal        float64 `json:"principal"`
	AmountAfterYears float64 `json:"amount_after_years"`
	InterestEarned   float64 `json:"interest_earned"`
}

type RowDTO struct {
	Year           int     `json:"year"`
	Age            *int    `json:"age,omitempty"`
	Balance        float64 `json:"balance"`
	InterestEarned float64 `json:"interest_earned"`
}

type ScheduleDTO struct {
	Principal float64  `json:"principal"`
	Rate      float64  `json:"rate"`
	Years     int      `json:"years"`
	FinalAge  *int     `json:"final_age,omitempty"`
	Rows      []RowDTO `json:"rows"`
}

type FieldError struct {
	Field   string
	Message string
}

// InputError lists every request field that could not be coerced.
type InputError struct {
	Fields []FieldError
}

func (e *InputError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}
