package feiertage

import (
	"errors"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestHolidaysInYear_Counts2019(t *testing.T) {
	tests := []struct {
		state State
		want  int
	}{
		{BadenWuerttemberg, 12},
		{Bayern, 13},
		{Berlin, 10},
		{Brandenburg, 10},
		{Bremen, 10},
		{Hamburg, 10},
		{Hessen, 10},
		{MecklenburgVorpommern, 10},
		{Niedersachsen, 10},
		{NordrheinWestfalen, 11},
		{RheinlandPfalz, 11},
		{Saarland, 12},
		{Sachsen, 11},
		{SachsenAnhalt, 11},
		{SchleswigHolstein, 10},
		{Thueringen, 11},
	}

	for _, tt := range tests {
		t.Run(tt.state.Name(), func(t *testing.T) {
			holidays, err := tt.state.HolidaysInYear(2019)
			if err != nil {
				t.Fatalf("HolidaysInYear(2019) error = %v", err)
			}

			if len(holidays) != tt.want {
				t.Errorf("HolidaysInYear(2019) returned %d holidays, want %d",
					len(holidays), tt.want)
			}
		})
	}
}

func TestHolidaysInYear_NationwideEverywhere(t *testing.T) {
	nationwide := []Holiday{
		Neujahr, Karfreitag, Ostermontag, ErsterMai, ChristiHimmelfahrt,
		Pfingstmontag, TagDerDeutschenEinheit,
		ErsterWeihnachtsfeiertag, ZweiterWeihnachtsfeiertag,
	}

	for _, year := range []int{1995, 2000, 2019, 2024, 2050} {
		for _, state := range AllStates() {
			holidays, err := state.HolidaysInYear(year)
			if err != nil {
				t.Fatalf("%s.HolidaysInYear(%d) error = %v", state, year, err)
			}

			for _, want := range nationwide {
				if !containsHoliday(holidays, want) {
					t.Errorf("%s.HolidaysInYear(%d) missing nationwide holiday %s",
						state, year, want)
				}
			}
		}
	}
}

func TestHolidaysInYear_YearBefore1995(t *testing.T) {
	_, err := BadenWuerttemberg.HolidaysInYear(1994)
	if err == nil {
		t.Fatal("HolidaysInYear(1994) expected error, got nil")
	}
	if !errors.Is(err, ErrYearOutOfRange) {
		t.Errorf("HolidaysInYear(1994) error = %v, want ErrYearOutOfRange", err)
	}
}

func TestHolidaysInYear_InvalidState(t *testing.T) {
	_, err := State(99).HolidaysInYear(2024)
	if err == nil {
		t.Fatal("HolidaysInYear on invalid state expected error, got nil")
	}
	if !errors.Is(err, ErrUnknownState) {
		t.Errorf("HolidaysInYear error = %v, want ErrUnknownState", err)
	}
}

func TestHolidayDatesInYear_Bavaria2024(t *testing.T) {
	dates, err := Bayern.HolidayDatesInYear(2024)
	if err != nil {
		t.Fatalf("HolidayDatesInYear(2024) error = %v", err)
	}

	wantDates := map[Holiday]time.Time{
		HeiligeDreiKoenige: date(2024, time.January, 6),
		Fronleichnam:       date(2024, time.May, 30),
		MariaeHimmelfahrt:  date(2024, time.August, 15),
	}

	for holiday, want := range wantDates {
		found := false
		for _, hd := range dates {
			if hd.Holiday == holiday {
				found = true
				if !hd.Date.Equal(want) {
					t.Errorf("%s on %s, want %s", holiday,
						hd.Date.Format("2006-01-02"), want.Format("2006-01-02"))
				}
			}
		}
		if !found {
			t.Errorf("HolidayDatesInYear(2024) for Bayern missing %s", holiday)
		}
	}
}

func TestHolidaysInYear_HamburgExcludesCatholicHolidays(t *testing.T) {
	holidays, err := Hamburg.HolidaysInYear(2024)
	if err != nil {
		t.Fatalf("HolidaysInYear(2024) error = %v", err)
	}

	for _, excluded := range []Holiday{HeiligeDreiKoenige, Fronleichnam, MariaeHimmelfahrt, Allerheiligen} {
		if containsHoliday(holidays, excluded) {
			t.Errorf("Hamburg.HolidaysInYear(2024) unexpectedly contains %s", excluded)
		}
	}
}

func TestHolidayDatesInYear_SortedAndDuplicateFree(t *testing.T) {
	for _, year := range []int{1995, 2018, 2024, 2040} {
		for _, state := range AllStates() {
			dates, err := state.HolidayDatesInYear(year)
			if err != nil {
				t.Fatalf("%s.HolidayDatesInYear(%d) error = %v", state, year, err)
			}

			for i := 1; i < len(dates); i++ {
				if !dates[i-1].Date.Before(dates[i].Date) {
					t.Errorf("%s.HolidayDatesInYear(%d) not strictly sorted at %d: %s >= %s",
						state, year, i,
						dates[i-1].Date.Format("2006-01-02"),
						dates[i].Date.Format("2006-01-02"))
				}
			}
		}
	}
}

func TestFrauentag_ActivationYears(t *testing.T) {
	tests := []struct {
		state State
		year  int
		want  bool
	}{
		{Berlin, 2018, false},
		{Berlin, 2019, true},
		{MecklenburgVorpommern, 2022, false},
		{MecklenburgVorpommern, 2023, true},
		{Hamburg, 2024, false},
	}

	for _, tt := range tests {
		holidays, err := tt.state.HolidaysInYear(tt.year)
		if err != nil {
			t.Fatalf("%s.HolidaysInYear(%d) error = %v", tt.state, tt.year, err)
		}

		if got := containsHoliday(holidays, Frauentag); got != tt.want {
			t.Errorf("%s.HolidaysInYear(%d) contains Frauentag = %v, want %v",
				tt.state, tt.year, got, tt.want)
		}
	}
}

func TestReformationstag_ActivationYears(t *testing.T) {
	// Observed in the north-western states only since 2018; in
	// Brandenburg and the eastern states for the whole covered period.
	tests := []struct {
		state State
		year  int
		want  bool
	}{
		{Hamburg, 2017, false},
		{Hamburg, 2018, true},
		{Bremen, 2017, false},
		{Niedersachsen, 2018, true},
		{SchleswigHolstein, 2017, false},
		{Brandenburg, 1995, true},
		{Sachsen, 2000, true},
		{Thueringen, 1995, true},
	}

	for _, tt := range tests {
		holidays, err := tt.state.HolidaysInYear(tt.year)
		if err != nil {
			t.Fatalf("%s.HolidaysInYear(%d) error = %v", tt.state, tt.year, err)
		}

		if got := containsHoliday(holidays, Reformationstag); got != tt.want {
			t.Errorf("%s.HolidaysInYear(%d) contains Reformationstag = %v, want %v",
				tt.state, tt.year, got, tt.want)
		}
	}
}

func TestWeltkindertag_ActivationYear(t *testing.T) {
	holidays2018, err := Thueringen.HolidaysInYear(2018)
	if err != nil {
		t.Fatalf("HolidaysInYear(2018) error = %v", err)
	}
	if containsHoliday(holidays2018, Weltkindertag) {
		t.Error("Thüringen 2018 unexpectedly contains Weltkindertag")
	}

	holidays2019, err := Thueringen.HolidaysInYear(2019)
	if err != nil {
		t.Fatalf("HolidaysInYear(2019) error = %v", err)
	}
	if !containsHoliday(holidays2019, Weltkindertag) {
		t.Error("Thüringen 2019 missing Weltkindertag")
	}
}

func TestIsHoliday(t *testing.T) {
	tests := []struct {
		name  string
		state State
		date  time.Time
		want  bool
	}{
		{"Christmas in Berlin", Berlin, date(2024, time.December, 25), true},
		{"Christmas Eve is no holiday", Berlin, date(2024, time.December, 24), false},
		{"Buß- und Bettag in Sachsen 2023", Sachsen, date(2023, time.November, 22), true},
		{"Buß- und Bettag not in Bayern", Bayern, date(2023, time.November, 22), false},
		{"Neujahr before 1995", Bayern, date(1994, time.January, 1), false},
		{"Easter Monday 2024", Hessen, date(2024, time.April, 1), true},
		{"time of day is ignored", Berlin, time.Date(2024, time.October, 3, 15, 30, 0, 0, time.Local), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%s) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestHolidayOn(t *testing.T) {
	holiday, ok := Bayern.HolidayOn(date(2018, time.January, 1))
	if !ok {
		t.Fatal("HolidayOn(2018-01-01) = none, want Neujahr")
	}
	if holiday != Neujahr {
		t.Errorf("HolidayOn(2018-01-01) = %s, want Neujahr", holiday)
	}

	if _, ok := Bayern.HolidayOn(date(2018, time.January, 2)); ok {
		t.Error("HolidayOn(2018-01-02) unexpectedly found a holiday")
	}
}

func TestHolidayDatesInYear_Idempotent(t *testing.T) {
	first, err := Sachsen.HolidayDatesInYear(2024)
	if err != nil {
		t.Fatalf("HolidayDatesInYear(2024) error = %v", err)
	}
	second, err := Sachsen.HolidayDatesInYear(2024)
	if err != nil {
		t.Fatalf("HolidayDatesInYear(2024) error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Holiday != second[i].Holiday || !first[i].Date.Equal(second[i].Date) {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func containsHoliday(holidays []Holiday, want Holiday) bool {
	for _, holiday := range holidays {
		if holiday == want {
			return true
		}
	}
	return false
}
