package records

import "github.com/edubars/barskema"

// Mark is a single grade. The portal sends the grade as a string.
type Mark struct {
	Date        string
	Description string
	Mark        int
}

var MarkSchema = barskema.NewSchema("Mark",
	barskema.String("date", func(m *Mark) *string { return &m.Date }),
	barskema.String("description", func(m *Mark) *string { return &m.Description }).Nullable(),
	barskema.Int("mark", func(m *Mark) *int { return &m.Mark }),
).Prepare(StepMarkFromString, markFromString)

// SummaryMarksDiscipline holds the grades of one subject in the current
// period.
type SummaryMarksDiscipline struct {
	AverageMark float64
	Discipline  string
	Marks       []Mark
}

var SummaryMarksDisciplineSchema = barskema.NewSchema("SummaryMarksDiscipline",
	barskema.Float("average_mark", func(d *SummaryMarksDiscipline) *float64 { return &d.AverageMark }),
	barskema.String("discipline", func(d *SummaryMarksDiscipline) *string { return &d.Discipline }),
	barskema.ObjectList("marks", MarkSchema, func(d *SummaryMarksDiscipline) *[]Mark { return &d.Marks }),
).Prepare(StepAverageFromString, averageFromString)

// Subperiod is a school term.
type Subperiod struct {
	Code string
	Name string
}

var SubperiodSchema = barskema.NewSchema("Subperiod",
	barskema.String("code", func(s *Subperiod) *string { return &s.Code }),
	barskema.String("name", func(s *Subperiod) *string { return &s.Name }),
)

// SummaryMarks is the grade summary of a term. The portal calls Disciplines
// "discipline_marks".
type SummaryMarks struct {
	Dates       []string
	Disciplines []SummaryMarksDiscipline
	Subperiod   Subperiod
}

var SummaryMarksSchema = barskema.NewSchema("SummaryMarks",
	barskema.Strings("dates", func(s *SummaryMarks) *[]string { return &s.Dates }),
	barskema.ObjectList("disciplines", SummaryMarksDisciplineSchema, func(s *SummaryMarks) *[]SummaryMarksDiscipline { return &s.Disciplines }),
	barskema.Object("subperiod", SubperiodSchema, func(s *SummaryMarks) *Subperiod { return &s.Subperiod }),
).
	Prepare(StepRenameDisciplineMarks, renameKey("discipline_marks", "disciplines")).
	Export(StepRenameDisciplineMarks, exportKey("disciplines", "discipline_marks"))

// TotalMarksDiscipline holds the term grades of one subject.
type TotalMarksDiscipline struct {
	Discipline  string
	PeriodMarks []int
}

var TotalMarksDisciplineSchema = barskema.NewSchema("TotalMarksDiscipline",
	barskema.String("discipline", func(d *TotalMarksDiscipline) *string { return &d.Discipline }),
	barskema.Ints("period_marks", func(d *TotalMarksDiscipline) *[]int { return &d.PeriodMarks }),
).Prepare(StepPeriodMarksFromStrings, periodMarksFromStrings)

// TotalMarks is the year overview.
type TotalMarks struct {
	Disciplines []TotalMarksDiscipline
	Subperiods  []Subperiod
}

var TotalMarksSchema = barskema.NewSchema("TotalMarks",
	barskema.ObjectList("disciplines", TotalMarksDisciplineSchema, func(t *TotalMarks) *[]TotalMarksDiscipline { return &t.Disciplines }),
	barskema.ObjectList("subperiods", SubperiodSchema, func(t *TotalMarks) *[]Subperiod { return &t.Subperiods }),
).
	Prepare(StepRenameDisciplineMarks, renameKey("discipline_marks", "disciplines")).
	Export(StepRenameDisciplineMarks, exportKey("disciplines", "discipline_marks"))
