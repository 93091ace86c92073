// Package feiertage calculates the public holidays observed in each German
// federal state. It covers all recurring holidays which exist since 1995;
// holidays introduced later (e.g. Frauentag in Berlin) are included from
// their first year in force onward.
//
// All computations are pure: the package keeps no mutable state and the
// rule table is safe for concurrent reads.
package feiertage

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrYearOutOfRange is returned for years before 1995, the start of
	// the period covered by the rule table
	ErrYearOutOfRange = errors.New("year out of covered range")

	// ErrUnknownState is returned when a value is not one of the 16
	// federal states
	ErrUnknownState = errors.New("unknown federal state")

	// ErrUnknownHoliday is returned when a value does not name a known
	// holiday
	ErrUnknownHoliday = errors.New("unknown holiday")
)

// HolidayDate pairs a holiday with its date in a specific year
type HolidayDate struct {
	Holiday Holiday
	Date    time.Time
}

// HolidaysInYear returns all holidays observed in the state in the given
// year: the nationwide set plus the state-specific additions in force that
// year. Returns ErrYearOutOfRange for years before 1995 and ErrUnknownState
// for values outside the enum.
func (s State) HolidaysInYear(year int) ([]Holiday, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("holidays in %d: %w: %d", year, ErrUnknownState, int(s))
	}
	if year < MinYear {
		return nil, fmt.Errorf("holidays in %d: %w (covered from %d)", year, ErrYearOutOfRange, MinYear)
	}

	holidays := make([]Holiday, 0, len(nationwideHolidays)+len(stateHolidays[s]))
	holidays = append(holidays, nationwideHolidays...)
	for _, rule := range stateHolidays[s] {
		if rule.since != 0 && year < rule.since {
			continue
		}
		holidays = append(holidays, rule.holiday)
	}

	return holidays, nil
}

// HolidayDatesInYear returns all holidays observed in the state in the given
// year together with their dates, sorted ascending by date
func (s State) HolidayDatesInYear(year int) ([]HolidayDate, error) {
	holidays, err := s.HolidaysInYear(year)
	if err != nil {
		return nil, err
	}

	dates := make([]HolidayDate, 0, len(holidays))
	for _, holiday := range holidays {
		dates = append(dates, HolidayDate{Holiday: holiday, Date: holiday.Date(year)})
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Date.Before(dates[j].Date)
	})

	return dates, nil
}

// HolidayOn returns the holiday observed in the state on the given date.
// The time of day and timezone of the input are ignored; only the calendar
// date counts. The second return value is false if the date is not a
// holiday, including all dates before 1995.
func (s State) HolidayOn(date time.Time) (Holiday, bool) {
	holidays, err := s.HolidaysInYear(date.Year())
	if err != nil {
		return 0, false
	}

	for _, holiday := range holidays {
		if sameDate(holiday.Date(date.Year()), date) {
			return holiday, true
		}
	}

	return 0, false
}

// IsHoliday reports whether the given date is a public holiday in the state.
// Always false for dates before 1995.
func (s State) IsHoliday(date time.Time) bool {
	_, ok := s.HolidayOn(date)
	return ok
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
