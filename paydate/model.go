package paydate

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MODEL - Recurrence rule between nominal paydates
// =============================================================================

// Model selects the step between one nominal paydate and the next.
type Model string

const (
	Monthly  Model = "MONTHLY"  // same day of month, rolling to the 1st past short months
	Biweekly Model = "BIWEEKLY" // same weekday every other week
	Weekly   Model = "WEEKLY"   // same weekday every week
)

// Models lists every supported model in a stable order.
func Models() []Model {
	return []Model{Monthly, Biweekly, Weekly}
}

// ParseModel accepts the exact, case-sensitive model tokens.
func ParseModel(s string) (Model, error) {
	m := Model(s)
	if !m.Valid() {
		return "", &InvalidModelError{Value: s}
	}
	return m, nil
}

// Valid reports whether m is one of the supported models.
func (m Model) Valid() bool {
	switch m {
	case Monthly, Biweekly, Weekly:
		return true
	}
	return false
}

func (m Model) String() string { return string(m) }

// Advance returns the nominal paydate one step after d. It panics on an
// unknown model; ParseModel is the guard at the boundary.
func (m Model) Advance(d Date) Date {
	switch m {
	case Weekly:
		return d.AddDays(7)
	case Biweekly:
		return d.AddDays(14)
	case Monthly:
		return d.AddMonth()
	}
	panic(&InvalidModelError{Value: string(m)})
}

// PeriodsPerYear is the nominal number of paydates in a year.
func (m Model) PeriodsPerYear() int {
	switch m {
	case Weekly:
		return 52
	case Biweekly:
		return 26
	case Monthly:
		return 12
	}
	return 0
}

// GrossPerPeriod splits an annual amount evenly across the model's pay
// periods, rounded to cents.
func GrossPerPeriod(annual decimal.Decimal, m Model) decimal.Decimal {
	periods := m.PeriodsPerYear()
	if periods == 0 {
		return decimal.Zero
	}
	return annual.Div(decimal.NewFromInt(int64(periods))).Round(2)
}
