package paydate

import (
	"sort"
	"time"
)

// =============================================================================
// HOLIDAY SET - Immutable set of non-paydays
// =============================================================================

// Holiday is a named non-payday, as persisted in a holiday calendar.
type Holiday struct {
	ID   string
	Date Date
	Name string
}

// dayKey is the comparable map key behind HolidaySet lookups.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(d Date) dayKey {
	y, m, day := d.Time.Date()
	return dayKey{year: y, month: m, day: day}
}

// HolidaySet is an immutable set of dates. The zero value is an empty set.
type HolidaySet struct {
	days map[dayKey]struct{}
}

// NewHolidaySet copies dates into a new set. Duplicates collapse.
func NewHolidaySet(dates ...Date) HolidaySet {
	days := make(map[dayKey]struct{}, len(dates))
	for _, d := range dates {
		days[keyOf(d)] = struct{}{}
	}
	return HolidaySet{days: days}
}

// HolidaySetOf builds a set from named holidays.
func HolidaySetOf(holidays []Holiday) HolidaySet {
	dates := make([]Date, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}
	return NewHolidaySet(dates...)
}

// Contains reports exact calendar-day membership.
func (s HolidaySet) Contains(d Date) bool {
	_, ok := s.days[keyOf(d)]
	return ok
}

// Len returns the number of distinct dates.
func (s HolidaySet) Len() int { return len(s.days) }

// Dates returns the members in ascending order.
func (s HolidaySet) Dates() []Date {
	out := make([]Date, 0, len(s.days))
	for k := range s.days {
		out = append(out, NewDate(k.year, k.month, k.day))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// =============================================================================
// DEFAULT CALENDAR - US bank holidays 2014-2015
// =============================================================================

// DefaultHolidays returns the built-in calendar as named holidays. Each call
// returns a fresh slice.
func DefaultHolidays() []Holiday {
	return []Holiday{
		{ID: "2014-01-01", Date: NewDate(2014, time.January, 1), Name: "New Year's Day"},
		{ID: "2014-01-20", Date: NewDate(2014, time.January, 20), Name: "Martin Luther King Jr. Day"},
		{ID: "2014-02-17", Date: NewDate(2014, time.February, 17), Name: "Presidents' Day"},
		{ID: "2014-05-26", Date: NewDate(2014, time.May, 26), Name: "Memorial Day"},
		{ID: "2014-07-04", Date: NewDate(2014, time.July, 4), Name: "Independence Day"},
		{ID: "2014-09-01", Date: NewDate(2014, time.September, 1), Name: "Labor Day"},
		{ID: "2014-10-13", Date: NewDate(2014, time.October, 13), Name: "Columbus Day"},
		{ID: "2014-11-11", Date: NewDate(2014, time.November, 11), Name: "Veterans Day"},
		{ID: "2014-11-27", Date: NewDate(2014, time.November, 27), Name: "Thanksgiving Day"},
		{ID: "2014-12-25", Date: NewDate(2014, time.December, 25), Name: "Christmas Day"},
		{ID: "2015-01-01", Date: NewDate(2015, time.January, 1), Name: "New Year's Day"},
		{ID: "2015-01-19", Date: NewDate(2015, time.January, 19), Name: "Martin Luther King Jr. Day"},
		{ID: "2015-02-16", Date: NewDate(2015, time.February, 16), Name: "Presidents' Day"},
		{ID: "2015-05-25", Date: NewDate(2015, time.May, 25), Name: "Memorial Day"},
		{ID: "2015-07-03", Date: NewDate(2015, time.July, 3), Name: "Independence Day (observed)"},
		{ID: "2015-09-07", Date: NewDate(2015, time.September, 7), Name: "Labor Day"},
		{ID: "2015-10-12", Date: NewDate(2015, time.October, 12), Name: "Columbus Day"},
		{ID: "2015-11-11", Date: NewDate(2015, time.November, 11), Name: "Veterans Day"},
		{ID: "2015-11-26", Date: NewDate(2015, time.November, 26), Name: "Thanksgiving Day"},
		{ID: "2015-12-25", Date: NewDate(2015, time.December, 25), Name: "Christmas Day"},
	}
}

// DefaultHolidaySet is the built-in calendar as a set.
func DefaultHolidaySet() HolidaySet {
	return HolidaySetOf(DefaultHolidays())
}
