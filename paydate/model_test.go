package paydate_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/paydate-engine/paydate"
)

func TestAdvance_Steps(t *testing.T) {
	cases := []struct {
		model    paydate.Model
		from     string
		expected string
	}{
		{paydate.Weekly, "2014-12-29", "2015-01-05"},
		{paydate.Biweekly, "2014-12-22", "2015-01-05"},
		{paydate.Monthly, "2014-01-17", "2014-02-17"},
		{paydate.Monthly, "2014-01-30", "2014-03-01"},
		{paydate.Monthly, "2014-01-31", "2014-03-01"},
		{paydate.Monthly, "2014-03-31", "2014-05-01"},
		{paydate.Monthly, "2016-01-29", "2016-02-29"},
		{paydate.Monthly, "2016-01-30", "2016-03-01"},
		{paydate.Monthly, "2014-12-31", "2015-01-31"},
		{paydate.Monthly, "2014-11-30", "2014-12-30"},
	}

	for _, tc := range cases {
		t.Run(string(tc.model)+" "+tc.from, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.model.Advance(d(tc.from)).String())
		})
	}
}

func TestParseModel(t *testing.T) {
	for _, token := range []string{"MONTHLY", "BIWEEKLY", "WEEKLY"} {
		m, err := paydate.ParseModel(token)
		require.NoError(t, err)
		assert.Equal(t, token, m.String())
	}

	for _, token := range []string{"", "Monthly", "weekly", "DAILY", " WEEKLY"} {
		_, err := paydate.ParseModel(token)
		assert.ErrorIs(t, err, paydate.ErrInvalidModel, "%q", token)
	}
}

func TestGrossPerPeriod(t *testing.T) {
	annual := decimal.RequireFromString("52000")

	assert.True(t, paydate.GrossPerPeriod(annual, paydate.Weekly).Equal(decimal.RequireFromString("1000")))
	assert.True(t, paydate.GrossPerPeriod(annual, paydate.Biweekly).Equal(decimal.RequireFromString("2000")))
	assert.Equal(t, "4333.33", paydate.GrossPerPeriod(annual, paydate.Monthly).StringFixed(2))
	assert.True(t, paydate.GrossPerPeriod(annual, paydate.Model("DAILY")).IsZero())
}

func TestDate_ParseAndFormat(t *testing.T) {
	date, err := paydate.ParseDate("2014-02-28")
	require.NoError(t, err)
	assert.Equal(t, 2014, date.Year())
	assert.Equal(t, time.February, date.Month())
	assert.Equal(t, 28, date.Day())

	for _, bad := range []string{"2014-02-30", "28-02-2014", "2014/02/28", "", "2014-2-28"} {
		_, err := paydate.ParseDate(bad)
		assert.ErrorIs(t, err, paydate.ErrUnparsableDate, "%q", bad)
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date paydate.Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2014-05-23"}`), &payload))
	assert.Equal(t, d("2014-05-23"), payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2014-05-23"}`, string(out))
}

func TestTodayAt_UsesReferenceZone(t *testing.T) {
	// 05:00 UTC on the 13th is still the evening of the 12th in Los Angeles.
	now := time.Date(2014, time.May, 13, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, d("2014-05-12"), paydate.TodayAt(now))
}

func TestHolidaySet(t *testing.T) {
	set := paydate.NewHolidaySet(d("2015-01-01"), d("2014-12-25"), d("2015-01-01"))

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(d("2014-12-25")))
	assert.False(t, set.Contains(d("2014-12-26")))
	assert.Equal(t, []paydate.Date{d("2014-12-25"), d("2015-01-01")}, set.Dates())

	var empty paydate.HolidaySet
	assert.False(t, empty.Contains(d("2014-12-25")))
	assert.Equal(t, 0, empty.Len())
}

func TestDefaultHolidays(t *testing.T) {
	holidays := paydate.DefaultHolidays()
	require.Len(t, holidays, 20)

	set := paydate.DefaultHolidaySet()
	assert.Equal(t, 20, set.Len())
	assert.True(t, set.Contains(d("2014-05-26")))
	assert.True(t, set.Contains(d("2015-07-03")))

	// Callers cannot reach the built-in list through a returned slice.
	holidays[0].Date = d("2000-01-01")
	assert.True(t, paydate.DefaultHolidaySet().Contains(d("2014-01-01")))
}
