package portal

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edubars/barskema"
	"github.com/edubars/barskema/codec"
	"github.com/edubars/barskema/records"
)

// Client exposes the portal endpoints as typed calls. Faults from the
// Fetcher are returned unchanged; decode failures are barskema.Issues.
type Client struct {
	fetcher Fetcher
	host    string
	decode  barskema.DecodeOpt
}

// NewClient returns a client over f. baseURL is used to absolutize report
// links; an empty value means DefaultBaseURL.
func NewClient(f Fetcher, baseURL string, opt barskema.DecodeOpt) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{fetcher: f, host: strings.TrimSuffix(baseURL, "/"), decode: opt}
}

// ChartQuery selects the pupil, period and subject of a chart. SubjectID 0
// means every subject.
type ChartQuery struct {
	PupilID   int
	Begin     time.Time
	End       time.Time
	SubjectID int
}

func (q ChartQuery) form() url.Values {
	v := url.Values{}
	v.Set("web_edu.plugins.corrective_school.corrective_card.actions.StudentPack_id", strconv.Itoa(q.PupilID))
	v.Set("subject", strconv.Itoa(q.SubjectID))
	v.Set("date_begin", codec.FormatDate(q.Begin))
	v.Set("date_end", codec.FormatDate(q.End))
	return v
}

func dateQuery(date time.Time, diary bool) url.Values {
	q := url.Values{"date": {codec.FormatDate(date)}}
	if diary {
		q.Set("is_diary", "true")
	}
	return q
}

// Diary returns the diary week containing date.
func (c *Client) Diary(ctx context.Context, date time.Time) ([]records.DiaryDay, error) {
	body, err := c.fetcher.Fetch(ctx, Call{Path: "api/ScheduleService/GetDiary", Query: dateQuery(date, true)})
	if err != nil {
		return nil, err
	}
	return decodeDays(ctx, records.DiaryDaySchema, body, c.decode)
}

// WeekSchedule returns the timetable of the week containing date.
func (c *Client) WeekSchedule(ctx context.Context, date time.Time) ([]records.ScheduleDay, error) {
	body, err := c.fetcher.Fetch(ctx, Call{Path: "api/ScheduleService/GetWeekSchedule", Query: dateQuery(date, false)})
	if err != nil {
		return nil, err
	}
	return decodeDays(ctx, records.ScheduleDaySchema, body, c.decode)
}

// MonthSchedule returns the timetable of the month containing date, one
// entry per week.
func (c *Client) MonthSchedule(ctx context.Context, date time.Time) ([]records.ScheduleMonth, error) {
	body, err := c.fetcher.Fetch(ctx, Call{Path: "api/ScheduleService/GetMonthSchedule", Query: dateQuery(date, false)})
	if err != nil {
		return nil, err
	}
	return decodeList(ctx, records.ScheduleMonthSchema, body, c.decode)
}

// ScheduleReportLink returns the absolute link of the timetable spreadsheet.
// interval is "week" or "month".
func (c *Client) ScheduleReportLink(ctx context.Context, date time.Time, interval string) (string, error) {
	if interval == "" {
		interval = "week"
	}
	q := dateQuery(date, false)
	q.Set("interval", interval)
	body, err := c.fetcher.Fetch(ctx, Call{Path: "api/ScheduleService/ScheduleReport", Query: q})
	if err != nil {
		return "", err
	}
	s, ok := body.(string)
	if !ok {
		return "", barskema.Issues{barskema.TypeMismatch("", "", barskema.Root(), "string", body)}
	}
	return c.host + strings.ReplaceAll(s, `"`, ""), nil
}

// SummaryMarks returns the grade summary of the term containing date.
func (c *Client) SummaryMarks(ctx context.Context, date time.Time) (records.SummaryMarks, error) {
	return fetchOne(ctx, c, Call{Path: "api/MarkService/GetSummaryMarks", Query: dateQuery(date, false)}, records.SummaryMarksSchema)
}

// TotalMarks returns the term grades of the current school year.
func (c *Client) TotalMarks(ctx context.Context) (records.TotalMarks, error) {
	return fetchOne(ctx, c, Call{Path: "api/MarkService/GetTotalMarks"}, records.TotalMarksSchema)
}

// AccountInfo returns the chart settings of the account, including the
// pupil id the chart endpoints need.
func (c *Client) AccountInfo(ctx context.Context) (records.AccountInfo, error) {
	return fetchOne(ctx, c, Call{Path: "api/MarkService/GetVisualizationData"}, records.AccountInfoSchema)
}

func (c *Client) PupilInfo(ctx context.Context) (records.PupilInfo, error) {
	return fetchOne(ctx, c, Call{Path: "api/ProfileService/GetPersonData"}, records.PupilInfoSchema)
}

func (c *Client) AttendanceData(ctx context.Context, q ChartQuery) (records.AttendanceData, error) {
	return fetchOne(ctx, c, Call{Path: "actions/web_edu.core.pupil.chart.ChartPack/attendancedata", Form: q.form()}, records.AttendanceDataSchema)
}

func (c *Client) ProgressData(ctx context.Context, q ChartQuery) (records.ProgressData, error) {
	return fetchOne(ctx, c, Call{Path: "actions/web_edu.core.pupil.chart.ChartPack/progressdata", Form: q.form()}, records.ProgressDataSchema)
}

func (c *Client) SchoolInfo(ctx context.Context) (records.SchoolInfo, error) {
	return fetchOne(ctx, c, Call{Path: "api/SchoolService/getSchoolInfo"}, records.SchoolInfoSchema)
}

func (c *Client) ClassInfo(ctx context.Context) (records.ClassInfo, error) {
	return fetchOne(ctx, c, Call{Path: "api/SchoolService/getClassYearInfo"}, records.ClassInfoSchema)
}

// Homework returns the homework of the week containing date.
func (c *Client) Homework(ctx context.Context, date time.Time) ([]records.HomeworkDay, error) {
	body, err := c.fetcher.Fetch(ctx, Call{Path: "api/HomeworkService/GetHomeworkFromRange", Query: dateQuery(date, true)})
	if err != nil {
		return nil, err
	}
	return decodeList(ctx, records.HomeworkDaySchema, body, c.decode)
}

// Birthdays returns the birthdays widget. The portal answers with a
// non-list body when there are none.
func (c *Client) Birthdays(ctx context.Context) ([]records.Birthday, error) {
	body, err := c.fetcher.Fetch(ctx, Call{Path: "api/WidgetService/getBirthdays"})
	if err != nil {
		return nil, err
	}
	if _, ok := body.([]any); !ok {
		return []records.Birthday{}, nil
	}
	return decodeList(ctx, records.BirthdaySchema, body, c.decode)
}

// Events returns the events widget; like Birthdays, a non-list body is
// empty.
func (c *Client) Events(ctx context.Context) ([]records.Event, error) {
	body, err := c.fetcher.Fetch(ctx, Call{Path: "api/WidgetService/getEvents"})
	if err != nil {
		return nil, err
	}
	if _, ok := body.([]any); !ok {
		return []records.Event{}, nil
	}
	return decodeList(ctx, records.EventSchema, body, c.decode)
}

func fetchOne[R any](ctx context.Context, c *Client, call Call, s *barskema.Schema[R]) (R, error) {
	body, err := c.fetcher.Fetch(ctx, call)
	if err != nil {
		var zero R
		return zero, err
	}
	doc, _ := body.(map[string]any)
	return s.Decode(ctx, doc, c.decode)
}

func decodeList[R any](ctx context.Context, s *barskema.Schema[R], body any, opt barskema.DecodeOpt) ([]R, error) {
	items, ok := body.([]any)
	if !ok {
		return nil, barskema.Issues{barskema.TypeMismatch(s.Name(), "", barskema.Root(), "list of "+s.Name(), body)}
	}
	return barskema.DecodeList(ctx, s, items, opt)
}

// decodeDays decodes the {"days": [...]} envelope of the week endpoints.
func decodeDays[R any](ctx context.Context, s *barskema.Schema[R], body any, opt barskema.DecodeOpt) ([]R, error) {
	env, _ := body.(map[string]any)
	days, ok := env["days"]
	if !ok {
		return nil, barskema.Issues{barskema.MissingField("", "days", barskema.Root().Field("days"))}
	}
	return decodeList(ctx, s, days, opt)
}
