package interest

import (
	"fmt"

	domain "github.com/AashmanShukla3223/Financial-Golf/internal/domain/interest"
)

// Usecase is stateless; one instance is shared by all requests.
type Usecase struct{}

func NewUsecase() *Usecase { return &Usecase{} }

// Parse substitutes defaults for absent fields, then coerces the rest.
func (u *Usecase) Parse(in CalculateInput) (domain.Params, error) {
	var c coercer
	p := domain.Params{
		Principal: c.number("principal", in.Principal, domain.DefaultPrincipal),
		Rate:      c.number("rate", in.Rate, domain.DefaultRate),
		Years:     c.integer("years", in.Years, domain.DefaultYears),
	}
	return p, c.err()
}

func (u *Usecase) Calculate(in CalculateInput) (*ResultDTO, error) {
	p, err := u.Parse(in)
	if err != nil {
		return nil, err
	}
	res, err := domain.Compute(p)
	if err != nil {
		return nil, fmt.Errorf("compound interest for %d years: %w", p.Years, err)
	}
	return &ResultDTO{
		Principal:        res.Principal,
		AmountAfterYears: res.AmountAfterYears,
		InterestEarned:   res.InterestEarned,
	}, nil
}

func (u *Usecase) ParseSchedule(in ScheduleInput) (*ScheduleQuery, error) {
	var c coercer
	q := &ScheduleQuery{
		Principal: c.number("principal", in.Principal, domain.DefaultPrincipal),
		Rate:      c.number("rate", in.Rate, domain.DefaultRate),
		Years:     c.integer("years", in.Years, domain.DefaultYears),
	}
	if in.CurrentAge != nil {
		age := c.integer("current_age", in.CurrentAge, 0)
		q.CurrentAge = &age
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return q, nil
}

// Schedule expects q to have been validated (years within bounds).
func (u *Usecase) Schedule(q ScheduleQuery) (*ScheduleDTO, error) {
	rows, err := domain.Schedule(domain.Params{Principal: q.Principal, Rate: q.Rate, Years: q.Years})
	if err != nil {
		return nil, fmt.Errorf("growth schedule for %d years: %w", q.Years, err)
	}

	out := &ScheduleDTO{
		Principal: q.Principal,
		Rate:      q.Rate,
		Years:     q.Years,
		Rows:      make([]RowDTO, 0, len(rows)),
	}
	for _, r := range rows {
		row := RowDTO{Year: r.Year, Balance: r.Balance, InterestEarned: r.InterestEarned}
		if q.CurrentAge != nil {
			age := *q.CurrentAge + r.Year
			row.Age = &age
		}
		out.Rows = append(out.Rows, row)
	}
	if q.CurrentAge != nil {
		final := *q.CurrentAge + q.Years
		out.FinalAge = &final
	}
	return out, nil
}
