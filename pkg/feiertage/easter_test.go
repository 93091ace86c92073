package feiertage

import (
	"testing"
	"time"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year      int
		wantMonth time.Month
		wantDay   int
	}{
		{1995, time.April, 16},
		{2000, time.April, 23},
		{2008, time.March, 23},
		{2016, time.March, 27},
		{2019, time.April, 21},
		{2024, time.March, 31},
		{2038, time.April, 25}, // latest possible date
		{2100, time.March, 28},
	}

	for _, tt := range tests {
		got := EasterSunday(tt.year)

		if got.Year() != tt.year || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
			t.Errorf("EasterSunday(%d) = %s, want %d-%02d-%02d",
				tt.year, got.Format("2006-01-02"), tt.year, tt.wantMonth, tt.wantDay)
		}
	}
}

func TestEasterSunday_AlwaysSundayInWindow(t *testing.T) {
	earliest := time.Date(0, time.March, 22, 0, 0, 0, 0, time.UTC)
	latest := time.Date(0, time.April, 25, 0, 0, 0, 0, time.UTC)

	for year := 1995; year <= 2100; year++ {
		got := EasterSunday(year)

		if got.Weekday() != time.Sunday {
			t.Errorf("EasterSunday(%d) = %s, not a Sunday", year, got.Format("2006-01-02 Mon"))
		}

		dayOnly := time.Date(0, got.Month(), got.Day(), 0, 0, 0, 0, time.UTC)
		if dayOnly.Before(earliest) || dayOnly.After(latest) {
			t.Errorf("EasterSunday(%d) = %s, outside Mar 22 - Apr 25",
				year, got.Format("2006-01-02"))
		}
	}
}

func TestRelativeToEasterSunday_CrossesMonthBoundary(t *testing.T) {
	// Easter 2024 is Mar 31; +60 days must land on May 30
	got := relativeToEasterSunday(2024, 60)
	want := time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("relativeToEasterSunday(2024, 60) = %s, want %s",
			got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}
