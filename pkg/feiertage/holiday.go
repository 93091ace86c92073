package feiertage

import (
	"fmt"
	"strings"
	"time"
)

// Holiday represents one recurring German public holiday
type Holiday int

const (
	Neujahr Holiday = iota
	HeiligeDreiKoenige
	Frauentag
	Karfreitag
	Ostermontag
	ErsterMai
	ChristiHimmelfahrt
	Pfingstmontag
	Fronleichnam
	AugsburgerFriedensfest
	MariaeHimmelfahrt
	Weltkindertag
	TagDerDeutschenEinheit
	Reformationstag
	Allerheiligen
	BussUndBettag
	ErsterWeihnachtsfeiertag
	ZweiterWeihnachtsfeiertag
)

var holidayDescriptions = [...]string{
	Neujahr:                   "Neujahr",
	HeiligeDreiKoenige:        "Heilige Drei Könige",
	Frauentag:                 "Frauentag",
	Karfreitag:                "Karfreitag",
	Ostermontag:               "Ostermontag",
	ErsterMai:                 "Erster Mai",
	ChristiHimmelfahrt:        "Christi Himmelfahrt",
	Pfingstmontag:             "Pfingstmontag",
	Fronleichnam:              "Fronleichnam",
	AugsburgerFriedensfest:    "Augsburger Friedensfest",
	MariaeHimmelfahrt:         "Mariä Himmelfahrt",
	Weltkindertag:             "Weltkindertag",
	TagDerDeutschenEinheit:    "Tag der Deutschen Einheit",
	Reformationstag:           "Reformationstag",
	Allerheiligen:             "Allerheiligen",
	BussUndBettag:             "Buß- und Bettag",
	ErsterWeihnachtsfeiertag:  "1. Weihnachtsfeiertag",
	ZweiterWeihnachtsfeiertag: "2. Weihnachtsfeiertag",
}

// Valid reports whether the holiday is one of the recognized values
func (h Holiday) Valid() bool {
	return h >= Neujahr && h <= ZweiterWeihnachtsfeiertag
}

// Description returns the German name of the holiday
func (h Holiday) Description() string {
	if !h.Valid() {
		return fmt.Sprintf("Holiday(%d)", int(h))
	}
	return holidayDescriptions[h]
}

// String returns the German name of the holiday
func (h Holiday) String() string {
	return h.Description()
}

// Date returns the date of the holiday in the given year as a UTC date
// at midnight. The computation is defined for any Gregorian year.
func (h Holiday) Date(year int) time.Time {
	switch h {
	case Neujahr:
		return fixedDate(year, time.January, 1)
	case HeiligeDreiKoenige:
		return fixedDate(year, time.January, 6)
	case Frauentag:
		return fixedDate(year, time.March, 8)
	case Karfreitag:
		return relativeToEasterSunday(year, -2)
	case Ostermontag:
		return relativeToEasterSunday(year, 1)
	case ErsterMai:
		return fixedDate(year, time.May, 1)
	case ChristiHimmelfahrt:
		return relativeToEasterSunday(year, 39)
	case Pfingstmontag:
		return relativeToEasterSunday(year, 50)
	case Fronleichnam:
		return relativeToEasterSunday(year, 60)
	case AugsburgerFriedensfest:
		return fixedDate(year, time.August, 8)
	case MariaeHimmelfahrt:
		return fixedDate(year, time.August, 15)
	case Weltkindertag:
		return fixedDate(year, time.September, 20)
	case TagDerDeutschenEinheit:
		return fixedDate(year, time.October, 3)
	case Reformationstag:
		return fixedDate(year, time.October, 31)
	case Allerheiligen:
		return fixedDate(year, time.November, 1)
	case BussUndBettag:
		return bussUndBettag(year)
	case ErsterWeihnachtsfeiertag:
		return fixedDate(year, time.December, 25)
	case ZweiterWeihnachtsfeiertag:
		return fixedDate(year, time.December, 26)
	default:
		return time.Time{}
	}
}

// ParseHoliday parses a holiday from its German name. Matching is
// case-insensitive.
func ParseHoliday(value string) (Holiday, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for i, description := range holidayDescriptions {
		if normalized == strings.ToLower(description) {
			return Holiday(i), nil
		}
	}
	return 0, fmt.Errorf("parse holiday %q: %w", value, ErrUnknownHoliday)
}

func fixedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// bussUndBettag returns the Wednesday strictly before November 23 of the year
func bussUndBettag(year int) time.Time {
	reference := fixedDate(year, time.November, 23)
	// Monday = 0 ... Sunday = 6
	weekday := (int(reference.Weekday()) + 6) % 7
	offset := 2 - weekday
	if weekday < 3 {
		offset = -(weekday + 5)
	}
	return reference.AddDate(0, 0, offset)
}
