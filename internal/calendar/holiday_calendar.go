package calendar

import (
	"fmt"
	"time"

	"github.com/username/feiertage/pkg/dateutil"
	"github.com/username/feiertage/pkg/feiertage"
	"go.uber.org/zap"
)

// HolidayCalendar implements Calendar for one German federal state. Weekends
// and public holidays are non-working days; everything else is a workday.
// All data is computed from the holiday rule table, no external source.
type HolidayCalendar struct {
	state  feiertage.State
	logger *zap.Logger
}

// NewHolidayCalendar creates a new HolidayCalendar for the given state
func NewHolidayCalendar(state feiertage.State, logger *zap.Logger) *HolidayCalendar {
	return &HolidayCalendar{
		state:  state,
		logger: logger,
	}
}

// State returns the federal state the calendar is built for
func (hc *HolidayCalendar) State() feiertage.State {
	return hc.state
}

// IsWorkday checks if the given date is a working day
func (hc *HolidayCalendar) IsWorkday(date time.Time) (bool, error) {
	dayInfo, err := hc.GetDayInfo(date)
	if err != nil {
		return false, err
	}

	return dayInfo.IsWorkday, nil
}

// GetDayInfo returns detailed info for a specific day
func (hc *HolidayCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	if date.Year() < feiertage.MinYear {
		return nil, fmt.Errorf("no calendar data for %s: %w",
			dateutil.FormatDate(date), feiertage.ErrYearOutOfRange)
	}

	day := dateutil.StartOfDay(date)

	if holiday, ok := hc.state.HolidayOn(day); ok {
		return &DayInfo{
			Date:      day,
			Type:      DayTypeHoliday,
			IsWorkday: false,
			Note:      holiday.Description(),
		}, nil
	}

	if dateutil.IsWeekend(day) {
		return &DayInfo{
			Date:      day,
			Type:      DayTypeWeekend,
			IsWorkday: false,
		}, nil
	}

	return &DayInfo{
		Date:      day,
		Type:      DayTypeWorkday,
		IsWorkday: true,
	}, nil
}

// GetMonthInfo returns calendar info for the entire month
func (hc *HolidayCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if year < feiertage.MinYear {
		return nil, fmt.Errorf("no calendar data for %d-%02d: %w",
			year, month, feiertage.ErrYearOutOfRange)
	}

	daysInMonth := dateutil.DaysInMonth(year, month)

	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		dayInfo, err := hc.GetDayInfo(dateutil.Date(year, month, day))
		if err != nil {
			return nil, err
		}

		switch dayInfo.Type {
		case DayTypeWorkday:
			monthInfo.WorkDays++
		case DayTypeWeekend:
			monthInfo.Weekends++
		case DayTypeHoliday:
			monthInfo.Holidays++
		}

		monthInfo.Days = append(monthInfo.Days, *dayInfo)
	}

	hc.logger.Debug("Month info computed",
		zap.String("state", hc.state.Code()),
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("work_days", monthInfo.WorkDays),
		zap.Int("holidays", monthInfo.Holidays))

	return monthInfo, nil
}
