package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warp/paydate-engine/config"
	"github.com/warp/paydate-engine/paydate"
)

var (
	nextCount    int
	todayFlag    string
	holidaysFlag string
)

var nextCmd = &cobra.Command{
	Use:   "next MODEL SEED",
	Short: "Print the next paydates for a model and a past paydate",
	Long:  "MODEL is MONTHLY, BIWEEKLY or WEEKLY. SEED is a past paydate as YYYY-MM-DD.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		count := nextCount
		if !cmd.Flags().Changed("count") {
			count = cfg.Paydates.DefaultCount
		}

		dates, err := engine.Calculate(args[0], args[1], count)
		if err != nil {
			return err
		}
		for _, d := range dates {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check DATE",
	Short: "Classify a date as holiday, weekend or valid paydate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := paydate.ParseDate(args[0])
		if err != nil {
			return err
		}
		engine, err := newEngine()
		if err != nil {
			return err
		}
		adjusted, err := engine.Adjust(date)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "date:     %s (%s)\n", date, date.Weekday())
		fmt.Fprintf(out, "holiday:  %t\n", engine.IsHoliday(date))
		fmt.Fprintf(out, "weekend:  %t\n", engine.IsWeekend(date))
		fmt.Fprintf(out, "valid:    %t\n", engine.IsValidPaydate(date))
		fmt.Fprintf(out, "adjusted: %s\n", adjusted)
		return nil
	},
}

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Print the holiday calendar in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		holidays, err := holidayList()
		if err != nil {
			return err
		}
		for _, h := range holidays {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", h.Date, h.Name)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{nextCmd, checkCmd, holidaysCmd} {
		c.Flags().StringVar(&holidaysFlag, "holidays", "", "YAML holiday file (default: configured or built-in calendar)")
	}
	for _, c := range []*cobra.Command{nextCmd, checkCmd} {
		c.Flags().StringVar(&todayFlag, "today", "", "reference today as YYYY-MM-DD (default: current date in "+paydate.ReferenceZone+")")
	}
	nextCmd.Flags().IntVar(&nextCount, "count", 10, "number of paydates")
}

// holidayList resolves the calendar: --holidays, then config, then built-in.
func holidayList() ([]paydate.Holiday, error) {
	if holidaysFlag != "" {
		return config.LoadHolidays(holidaysFlag)
	}
	return cfg.HolidaysOrDefault()
}

func newEngine() (*paydate.Engine, error) {
	holidays, err := holidayList()
	if err != nil {
		return nil, err
	}
	opts := []paydate.Option{
		paydate.WithHolidays(paydate.HolidaySetOf(holidays)),
		paydate.WithAdjustLimit(cfg.Paydates.AdjustLimit),
		paydate.WithLogger(logger),
	}
	if todayFlag != "" {
		today, err := paydate.ParseDate(todayFlag)
		if err != nil {
			return nil, err
		}
		opts = append(opts, paydate.WithToday(today))
	}
	return paydate.NewEngine(opts...), nil
}
