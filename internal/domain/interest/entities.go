package interest

import "errors"

// Defaults substituted for absent or null request fields.
const (
	DefaultPrincipal = 0.0
	DefaultRate      = 0.05
	DefaultYears     = 10
)

var ErrNonFinite = errors.New("result is not a finite number")

// Params are the coerced inputs of a compound interest calculation.
// Rate is a fractional annual rate (0.05 = 5%).
type Params struct {
	Principal float64
	Rate      float64
	Years     int
}

func DefaultParams() Params {
	return Params{Principal: DefaultPrincipal, Rate: DefaultRate, Years: DefaultYears}
}

type Result struct {
	Principal        float64
	AmountAfterYears float64
	InterestEarned   float64
}

// Row is one year of a growth schedule. Year 0 is the starting principal.
type Row struct {
	Year           int
	Balance        float64
	InterestEarned float64
}
