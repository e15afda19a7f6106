package interest

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds v to 2 decimal places, half away from zero, on the shortest
// decimal representation of v (2.675 -> 2.68, -2.675 -> -2.68).
// v must be finite.
func Round2(v float64) float64 {
	return round2(v).InexactFloat64()
}

func round2(v float64) decimal.Decimal { return decimal.NewFromFloat(v).Round(2) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Amount is principal * (1 + rate) ^ years, unrounded.
func Amount(p Params) float64 {
	return p.Principal * math.Pow(1+p.Rate, float64(p.Years))
}

// Compute rounds the amount first, then derives interest from the rounded amount.
func Compute(p Params) (Result, error) {
	if !finite(p.Principal) || !finite(p.Rate) {
		return Result{}, ErrNonFinite
	}
	amount := Amount(p)
	if !finite(amount) {
		return Result{}, ErrNonFinite
	}

	rounded := round2(amount)
	earned := rounded.Sub(decimal.NewFromFloat(p.Principal)).Round(2)

	return Result{
		Principal:        p.Principal,
		AmountAfterYears: rounded.InexactFloat64(),
		InterestEarned:   earned.InexactFloat64(),
	}, nil
}

// Schedule returns balances for every year from 0 to p.Years inclusive.
// Each row is computed independently so the last row matches Compute exactly.
func Schedule(p Params) ([]Row, error) {
	if p.Years < 0 {
		return nil, nil
	}
	rows := make([]Row, 0, p.Years+1)
	for y := 0; y <= p.Years; y++ {
		res, err := Compute(Params{Principal: p.Principal, Rate: p.Rate, Years: y})
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Year: y, Balance: res.AmountAfterYears, InterestEarned: res.InterestEarned})
	}
	return rows, nil
}
