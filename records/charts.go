package records

import "github.com/edubars/barskema"

// AttendanceData is the attendance report of one subject and period.
type AttendanceData struct {
	Absent     int
	AbsentBad  int
	AbsentGood int
	Ill        int
	Present    int
	Total      int
}

var AttendanceDataSchema = barskema.NewSchema("AttendanceData",
	barskema.Int("absent", func(a *AttendanceData) *int { return &a.Absent }),
	barskema.Int("absent_bad", func(a *AttendanceData) *int { return &a.AbsentBad }),
	barskema.Int("absent_good", func(a *AttendanceData) *int { return &a.AbsentGood }),
	barskema.Int("ill", func(a *AttendanceData) *int { return &a.Ill }),
	barskema.Int("present", func(a *AttendanceData) *int { return &a.Present }),
	barskema.Int("total", func(a *AttendanceData) *int { return &a.Total }),
)

// SeriesItem is one line of the progress chart. PointWidth arrives as a
// number or a string depending on the chart.
type SeriesItem struct {
	Color      string
	Data       []float64
	Name       string
	PointWidth barskema.Value
}

var SeriesItemSchema = barskema.NewSchema("SeriesItem",
	barskema.String("color", func(s *SeriesItem) *string { return &s.Color }),
	barskema.Floats("data", func(s *SeriesItem) *[]float64 { return &s.Data }),
	barskema.String("name", func(s *SeriesItem) *string { return &s.Name }),
	barskema.Any("point_width", func(s *SeriesItem) *barskema.Value { return &s.PointWidth }),
).
	Prepare(StepRenamePointWidth, renameKey("pointWidth", "point_width")).
	Export(StepRenamePointWidth, exportKey("point_width", "pointWidth"))

// ProgressData is the progress chart of one subject.
type ProgressData struct {
	Categories barskema.Value
	Dates      []string
	Series     []SeriesItem
	Subject    string
}

var ProgressDataSchema = barskema.NewSchema("ProgressData",
	barskema.Any("categories", func(p *ProgressData) *barskema.Value { return &p.Categories }),
	barskema.Strings("dates", func(p *ProgressData) *[]string { return &p.Dates }),
	barskema.ObjectList("series", SeriesItemSchema, func(p *ProgressData) *[]SeriesItem { return &p.Series }),
	barskema.String("subject", func(p *ProgressData) *string { return &p.Subject }),
)
