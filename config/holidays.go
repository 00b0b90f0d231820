package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warp/paydate-engine/paydate"
)

// holidayEntry is one item of a holiday file:
//
//	- date: "2014-12-25"
//	  name: Christmas Day
type holidayEntry struct {
	Date paydate.Date `yaml:"date"`
	Name string       `yaml:"name"`
}

// LoadHolidays reads a YAML holiday list.
func LoadHolidays(path string) ([]paydate.Holiday, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holidays %s: %w", path, err)
	}
	return ParseHolidays(data)
}

// ParseHolidays decodes a YAML holiday list. Dates must be YYYY-MM-DD.
func ParseHolidays(data []byte) ([]paydate.Holiday, error) {
	var entries []holidayEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse holidays: %w", err)
	}

	holidays := make([]paydate.Holiday, 0, len(entries))
	for i, e := range entries {
		if e.Date.IsZero() {
			return nil, fmt.Errorf("holiday %d: missing date", i)
		}
		holidays = append(holidays, paydate.Holiday{
			ID:   e.Date.String(),
			Date: e.Date,
			Name: e.Name,
		})
	}
	return holidays, nil
}

// HolidaysOrDefault loads cfg's holiday file, or the built-in calendar when
// none is configured.
func (c *Config) HolidaysOrDefault() ([]paydate.Holiday, error) {
	if c.Holidays.File == "" {
		return paydate.DefaultHolidays(), nil
	}
	return LoadHolidays(c.Holidays.File)
}
