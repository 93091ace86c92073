package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/feiertage/internal/calendar"
	"github.com/username/feiertage/internal/config"
	"github.com/username/feiertage/pkg/dateutil"
	"github.com/username/feiertage/pkg/feiertage"
	"go.uber.org/zap"
)

// cliOptions is the effective state and output format after merging config
// file values with command line flags (flags win)
type cliOptions struct {
	state  feiertage.State
	output string
}

func resolveOptions() (*cliOptions, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := &cliOptions{
		state:  cfg.DefaultState(),
		output: cfg.Output,
	}

	if stateFlag != "" {
		state, err := feiertage.ParseState(stateFlag)
		if err != nil {
			return nil, err
		}
		opts.state = state
	}

	if outputFlag != "" {
		if outputFlag != "table" && outputFlag != "json" {
			return nil, fmt.Errorf("output must be 'table' or 'json', got '%s'", outputFlag)
		}
		opts.output = outputFlag
	}

	return opts, nil
}

// holidayJSON is the JSON output shape for a single holiday
type holidayJSON struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [year]",
		Short: "List all public holidays for a state and year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions()
			if err != nil {
				return err
			}

			year := dateutil.Today().Year()
			if len(args) == 1 {
				year, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", args[0], err)
				}
			}

			dates, err := opts.state.HolidayDatesInYear(year)
			if err != nil {
				return err
			}

			logger.Info("Listing holidays",
				zap.String("state", opts.state.Code()),
				zap.Int("year", year),
				zap.Int("count", len(dates)))

			return printHolidays(opts, year, dates)
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <date>",
		Short: "Check whether a date is a public holiday in a state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions()
			if err != nil {
				return err
			}

			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			holiday, ok := opts.state.HolidayOn(date)
			if !ok {
				fmt.Printf("%s is not a public holiday in %s\n",
					dateutil.FormatDate(date), opts.state.Name())
				return nil
			}

			fmt.Printf("%s is a public holiday in %s: %s\n",
				dateutil.FormatDate(date), opts.state.Name(), holiday.Description())
			return nil
		},
	}
}

func nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next upcoming public holiday in a state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions()
			if err != nil {
				return err
			}

			today := dateutil.Today()
			next, err := nextHoliday(opts.state, today)
			if err != nil {
				return err
			}

			days := int(next.Date.Sub(dateutil.Date(today.Year(), today.Month(), today.Day())).Hours() / 24)
			fmt.Printf("Next public holiday in %s: %s on %s (in %d day(s))\n",
				opts.state.Name(), next.Holiday.Description(),
				dateutil.FormatDate(next.Date), days)
			return nil
		},
	}
}

func workdaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workdays <year> <month>",
		Short: "Show working day statistics for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions()
			if err != nil {
				return err
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q", args[1])
			}

			cal := calendar.NewHolidayCalendar(opts.state, logger)
			monthInfo, err := cal.GetMonthInfo(year, time.Month(month))
			if err != nil {
				return err
			}

			fmt.Printf("%s %d-%02d\n", opts.state.Name(), monthInfo.Year, int(monthInfo.Month))
			fmt.Printf("  Working days: %d\n", monthInfo.WorkDays)
			fmt.Printf("  Weekend days: %d\n", monthInfo.Weekends)
			fmt.Printf("  Holidays:     %d\n", monthInfo.Holidays)
			for _, day := range monthInfo.Days {
				if day.Type == calendar.DayTypeHoliday {
					fmt.Printf("  %s  %s\n", dateutil.FormatDate(day.Date), day.Note)
				}
			}
			return nil
		},
	}
}

// nextHoliday returns the first holiday on or after the given date
func nextHoliday(state feiertage.State, from time.Time) (feiertage.HolidayDate, error) {
	fromDate := dateutil.Date(from.Year(), from.Month(), from.Day())
	for year := from.Year(); ; year++ {
		dates, err := state.HolidayDatesInYear(year)
		if err != nil {
			return feiertage.HolidayDate{}, err
		}
		for _, hd := range dates {
			if !hd.Date.Before(fromDate) {
				return hd, nil
			}
		}
	}
}

func printHolidays(opts *cliOptions, year int, dates []feiertage.HolidayDate) error {
	if opts.output == "json" {
		out := make([]holidayJSON, 0, len(dates))
		for _, hd := range dates {
			out = append(out, holidayJSON{
				Name: hd.Holiday.Description(),
				Date: dateutil.FormatDate(hd.Date),
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	fmt.Printf("Public holidays in %s, %d:\n", opts.state.Name(), year)
	for _, hd := range dates {
		fmt.Printf("  %s  %s  %s\n",
			dateutil.FormatDate(hd.Date),
			hd.Date.Format("Mon"),
			hd.Holiday.Description())
	}
	return nil
}
