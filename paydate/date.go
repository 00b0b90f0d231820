package paydate

import (
	"fmt"
	"time"
	_ "time/tzdata" // reference zone must resolve on hosts without zoneinfo
)

// =============================================================================
// DATE - Calendar day with no time-of-day component
// =============================================================================

// ReferenceZone is the zone "today" is read in. All other computation is on
// calendar days and never touches a zone.
const ReferenceZone = "America/Los_Angeles"

// DateLayout is the boundary format for every date exchanged with callers.
const DateLayout = "2006-01-02"

// Date is a calendar day. The wrapped time is always midnight UTC so that
// day arithmetic is free of DST drift and Dates are comparable with ==.
type Date struct {
	Time time.Time
}

// NewDate builds a Date. Out-of-range values normalize the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t as observed in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current date in the reference zone.
func Today() Date {
	return TodayAt(time.Now())
}

// TodayAt returns the reference-zone calendar day containing instant now.
func TodayAt(now time.Time) Date {
	loc, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		// tzdata is embedded, so this only happens with a broken build
		loc = time.UTC
	}
	return DateOf(now.In(loc))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &DateParseError{Input: s, Err: err}
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals; it panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool        { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool         { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool         { return d.Time.Equal(other.Time) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// AddMonth moves to the same day-of-month in the following month. When that
// day does not exist there, the result is the 1st of the month after it:
// Jan 30 -> Mar 1, Mar 31 -> May 1.
func (d Date) AddMonth() Date {
	y, m, day := d.Time.Date()
	target := NewDate(y, m+1, 1)
	if day > daysIn(target.Year(), target.Month()) {
		return NewDate(target.Year(), target.Month()+1, 1)
	}
	return NewDate(target.Year(), target.Month(), day)
}

// Properties
func (d Date) Year() int              { return d.Time.Year() }
func (d Date) Month() time.Month      { return d.Time.Month() }
func (d Date) Day() int               { return d.Time.Day() }
func (d Date) Weekday() time.Weekday  { return d.Time.Weekday() }
func (d Date) IsZero() bool           { return d.Time.IsZero() }
func (d Date) String() string         { return d.Time.Format(DateLayout) }

// IsWeekend reports whether d is a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MarshalText encodes d as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD value.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GoString keeps test failure output readable.
func (d Date) GoString() string {
	return fmt.Sprintf("paydate.MustParseDate(%q)", d.String())
}
