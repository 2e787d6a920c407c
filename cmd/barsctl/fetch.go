package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edubars/barskema"
	"github.com/edubars/barskema/codec"
	"github.com/edubars/barskema/portal"
	"github.com/edubars/barskema/records"
)

var (
	fetchDate     string
	fetchInterval string
	fetchPupil    int
	fetchSubject  int
	fetchBegin    string
	fetchEnd      string
	fetchWire     bool
	fetchSanitize sanitizeFlags
)

// fetchArgs are the parsed flags of one fetch call.
type fetchArgs struct {
	date  time.Time
	chart portal.ChartQuery
}

type endpoint func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error)

func bindOne[R any](s *barskema.Schema[R], r R, err error) (barskema.Value, error) {
	if err != nil {
		return barskema.Value{}, err
	}
	return barskema.BindRecord(s, r), nil
}

func bindAll[R any](s *barskema.Schema[R], rs []R, err error) (barskema.Value, error) {
	if err != nil {
		return barskema.Value{}, err
	}
	out := make([]barskema.Value, len(rs))
	for i, r := range rs {
		out[i] = barskema.BindRecord(s, r)
	}
	return barskema.ListValue(out...), nil
}

var endpoints = map[string]endpoint{
	"diary": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		days, err := c.Diary(ctx, a.date)
		return bindAll(records.DiaryDaySchema, days, err)
	},
	"week-schedule": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		days, err := c.WeekSchedule(ctx, a.date)
		return bindAll(records.ScheduleDaySchema, days, err)
	},
	"month-schedule": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		weeks, err := c.MonthSchedule(ctx, a.date)
		return bindAll(records.ScheduleMonthSchema, weeks, err)
	},
	"schedule-report": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		link, err := c.ScheduleReportLink(ctx, a.date, fetchInterval)
		if err != nil {
			return barskema.Value{}, err
		}
		return barskema.StringValue(link), nil
	},
	"summary-marks": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.SummaryMarks(ctx, a.date)
		return bindOne(records.SummaryMarksSchema, r, err)
	},
	"total-marks": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.TotalMarks(ctx)
		return bindOne(records.TotalMarksSchema, r, err)
	},
	"account-info": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.AccountInfo(ctx)
		return bindOne(records.AccountInfoSchema, r, err)
	},
	"pupil-info": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.PupilInfo(ctx)
		return bindOne(records.PupilInfoSchema, r, err)
	},
	"attendance": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.AttendanceData(ctx, a.chart)
		return bindOne(records.AttendanceDataSchema, r, err)
	},
	"progress": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.ProgressData(ctx, a.chart)
		return bindOne(records.ProgressDataSchema, r, err)
	},
	"school-info": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.SchoolInfo(ctx)
		return bindOne(records.SchoolInfoSchema, r, err)
	},
	"class-info": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		r, err := c.ClassInfo(ctx)
		return bindOne(records.ClassInfoSchema, r, err)
	},
	"homework": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		days, err := c.Homework(ctx, a.date)
		return bindAll(records.HomeworkDaySchema, days, err)
	},
	"birthdays": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		bd, err := c.Birthdays(ctx)
		return bindAll(records.BirthdaySchema, bd, err)
	},
	"events": func(ctx context.Context, c *portal.Client, a fetchArgs) (barskema.Value, error) {
		ev, err := c.Events(ctx)
		return bindAll(records.EventSchema, ev, err)
	},
}

func endpointNames() []string {
	names := make([]string, 0, len(endpoints))
	for k := range endpoints {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

var fetchCmd = &cobra.Command{
	Use:   "fetch ENDPOINT",
	Short: "Call a portal endpoint and print the decoded records",
	Long: `Calls one portal endpoint with the configured session and prints the
decoded records.

Endpoints: ` + strings.Join(endpointNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fs := fetchCmd.Flags()
	fs.StringVar(&fetchDate, "date", "", "date inside the requested week or term (YYYY-MM-DD, default today)")
	fs.StringVar(&fetchInterval, "interval", "week", "schedule-report interval: week or month")
	fs.IntVar(&fetchPupil, "pupil", 0, "pupil id for attendance and progress (see account-info)")
	fs.IntVar(&fetchSubject, "subject", 0, "subject id for attendance and progress, 0 for all")
	fs.StringVar(&fetchBegin, "begin", "", "chart period begin (YYYY-MM-DD)")
	fs.StringVar(&fetchEnd, "end", "", "chart period end (YYYY-MM-DD)")
	fs.BoolVar(&fetchWire, "wire", false, "print wire (camelCase) names instead of debug names")
	fetchSanitize.register(fs)
}

func parseFetchArgs() (fetchArgs, error) {
	a := fetchArgs{date: time.Now(), chart: portal.ChartQuery{PupilID: fetchPupil, SubjectID: fetchSubject}}
	var err error
	if fetchDate != "" {
		if a.date, err = codec.ParseDate(fetchDate); err != nil {
			return a, fmt.Errorf("--date: %w", err)
		}
	}
	a.chart.Begin, a.chart.End = a.date, a.date
	if fetchBegin != "" {
		if a.chart.Begin, err = codec.ParseDate(fetchBegin); err != nil {
			return a, fmt.Errorf("--begin: %w", err)
		}
	}
	if fetchEnd != "" {
		if a.chart.End, err = codec.ParseDate(fetchEnd); err != nil {
			return a, fmt.Errorf("--end: %w", err)
		}
	}
	return a, nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	call, ok := endpoints[args[0]]
	if !ok {
		return fmt.Errorf("unknown endpoint %q (want one of %s)", args[0], strings.Join(endpointNames(), ", "))
	}
	if err := cfg.RequireSession(); err != nil {
		return err
	}
	a, err := parseFetchArgs()
	if err != nil {
		return err
	}

	rep := reporter()
	f := portal.NewHTTPFetcher(cfg.PortalOptions(rep), logger)
	defer f.Close()
	c := portal.NewClient(f, f.BaseURL(), cfg.DecodeOpt(rep))

	logger.Debug("fetching", zap.String("endpoint", args[0]))
	v, err := call(cmd.Context(), c, a)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if v, err = fetchSanitize.apply(v); err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), v.Encode(encodeMode(fetchWire)))
}
