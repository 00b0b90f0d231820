/*
Package paydate computes upcoming pay dates from a sample paydate and a
recurrence model.

PURPOSE:
  Given one historical paydate and a model (MONTHLY, BIWEEKLY, WEEKLY), the
  engine returns the next N valid paydates strictly after a reference today.
  A valid paydate is neither a weekend nor a holiday.

RULES:
  1. Weekend: move forward a day at a time until valid.
  2. Holiday: move back a day at a time until valid. Once a holiday has been
     hit, weekends met on the way are also resolved backward.
  3. Holiday adjustment takes precedence over weekend adjustment.
  4. The sample paydate is an anchor only; it is never adjusted or returned.
  5. The next paydate cannot be today.

NOMINAL VS ADJUSTED:
  Stepping always continues from the nominal date, never the adjusted one.
  A monthly schedule anchored on Jan 30 runs Jan 30, Mar 1, Apr 1, ...
  regardless of where the weekend shifts put the actual payments.

CONCURRENCY:
  An Engine is read-only after NewEngine and safe for concurrent use.

USAGE:
  e := paydate.NewEngine(paydate.WithToday(paydate.MustParseDate("2014-05-12")))
  dates, err := e.NextPaydates(paydate.Biweekly, paydate.MustParseDate("2014-05-12"), 10)

SEE ALSO:
  - model.go: Step functions
  - holidays.go: Holiday set and default calendar
  - errors.go: Error types
*/
package paydate

import (
	"github.com/rs/zerolog"
)

// DefaultAdjustLimit bounds the single-day moves one adjustment may make.
const DefaultAdjustLimit = 366

// Paydate is one generated paydate together with the nominal date it was
// adjusted from.
type Paydate struct {
	Nominal Date
	Date    Date
}

// Adjusted reports whether the nominal date had to move.
func (p Paydate) Adjusted() bool { return !p.Nominal.Equal(p.Date) }

// =============================================================================
// ENGINE
// =============================================================================

// Engine holds the reference today and holiday set used for every calculation.
type Engine struct {
	today       Date
	holidays    HolidaySet
	adjustLimit int
	logger      zerolog.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithToday fixes the reference today. Without it the engine uses the current
// date in ReferenceZone.
func WithToday(d Date) Option {
	return func(e *Engine) { e.today = d }
}

// WithHolidays replaces the default holiday calendar. An empty set is a valid
// override meaning "no holidays".
func WithHolidays(h HolidaySet) Option {
	return func(e *Engine) { e.holidays = NewHolidaySet(h.Dates()...) }
}

// WithAdjustLimit overrides DefaultAdjustLimit. Values below 1 are ignored.
func WithAdjustLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.adjustLimit = n
		}
	}
}

// WithLogger attaches a logger for adjustment debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine builds an engine. It never fails.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		holidays:    DefaultHolidaySet(),
		adjustLimit: DefaultAdjustLimit,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.today.IsZero() {
		e.today = Today()
	}
	return e
}

// Today returns the engine's reference today.
func (e *Engine) Today() Date { return e.today }

// Holidays returns the engine's holiday set.
func (e *Engine) Holidays() HolidaySet { return e.holidays }

// =============================================================================
// CLASSIFICATION
// =============================================================================

// IsHoliday reports whether d is in the engine's holiday set.
func (e *Engine) IsHoliday(d Date) bool { return e.holidays.Contains(d) }

// IsWeekend reports whether d is a Saturday or Sunday.
func (e *Engine) IsWeekend(d Date) bool { return d.IsWeekend() }

// IsValidPaydate reports whether d is neither a holiday nor a weekend.
func (e *Engine) IsValidPaydate(d Date) bool {
	return !e.IsHoliday(d) && !e.IsWeekend(d)
}

// =============================================================================
// STEPPING AND ADJUSTMENT
// =============================================================================

// Advance returns the nominal paydate one model step after d.
func (e *Engine) Advance(d Date, m Model) Date { return m.Advance(d) }

// Adjust moves d to a valid paydate. Holidays push backward; weekends push
// forward unless a holiday was already met, in which case they push backward
// too. A forward weekend walk that lands on a holiday turns around.
func (e *Engine) Adjust(d Date) (Date, error) {
	cur := d
	resolvingHoliday := false
	for moves := 0; ; moves++ {
		switch {
		case e.IsHoliday(cur):
			resolvingHoliday = true
		case e.IsWeekend(cur):
		default:
			if moves > 0 {
				e.logger.Debug().
					Stringer("nominal", d).
					Stringer("adjusted", cur).
					Bool("holiday", resolvingHoliday).
					Msg("paydate adjusted")
			}
			return cur, nil
		}

		if moves == e.adjustLimit {
			return Date{}, &AdjustmentLimitError{Start: d, Steps: moves}
		}
		if resolvingHoliday {
			cur = cur.AddDays(-1)
		} else {
			cur = cur.AddDays(1)
		}
	}
}

// =============================================================================
// SEQUENCE GENERATION
// =============================================================================

// NextSchedule returns the next count paydates after today with their
// nominal dates. The nominal sequence is advanced from seed at least once,
// so seed itself is never a candidate, and a nominal date equal to today is
// stepped past. Adjusted dates that fall back onto or before today, or onto
// a date already emitted, are skipped so the output stays strictly
// increasing and strictly after today.
func (e *Engine) NextSchedule(m Model, seed Date, count int) ([]Paydate, error) {
	if !m.Valid() {
		return nil, &InvalidModelError{Value: string(m)}
	}
	if count < 0 {
		return nil, ErrInvalidCount
	}

	out := make([]Paydate, 0, count)
	nominal := m.Advance(seed)
	for !nominal.After(e.today) {
		nominal = m.Advance(nominal)
	}

	last := e.today
	for len(out) < count {
		adjusted, err := e.Adjust(nominal)
		if err != nil {
			return nil, err
		}
		if adjusted.After(last) {
			out = append(out, Paydate{Nominal: nominal, Date: adjusted})
			last = adjusted
		} else {
			e.logger.Debug().
				Stringer("nominal", nominal).
				Stringer("adjusted", adjusted).
				Msg("paydate skipped, not after previous")
		}
		nominal = m.Advance(nominal)
	}
	return out, nil
}

// NextPaydates returns the next count valid paydates after today.
func (e *Engine) NextPaydates(m Model, seed Date, count int) ([]Date, error) {
	schedule, err := e.NextSchedule(m, seed, count)
	if err != nil {
		return nil, err
	}
	dates := make([]Date, len(schedule))
	for i, p := range schedule {
		dates[i] = p.Date
	}
	return dates, nil
}

// Calculate is NextPaydates over boundary strings: a model token and a
// YYYY-MM-DD seed in, YYYY-MM-DD dates out.
func (e *Engine) Calculate(model, seed string, count int) ([]string, error) {
	m, err := ParseModel(model)
	if err != nil {
		return nil, err
	}
	s, err := ParseDate(seed)
	if err != nil {
		return nil, err
	}
	dates, err := e.NextPaydates(m, s, count)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out, nil
}
