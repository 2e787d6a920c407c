package records

import "github.com/edubars/barskema"

// ScheduleLesson is a lesson of the timetable. Most fields are missing for
// lessons that were not staffed yet.
type ScheduleLesson struct {
	Date           string
	Discipline     string
	Index          int
	IsControlWork  bool
	ID             *int
	HasAuthSferum  *bool
	Office         *string
	StudyTimeName  *string
	StudyTimeShift *int
	Teacher        *string
	TimeBegin      *string
	TimeEnd        *string
}

var ScheduleLessonSchema = barskema.NewSchema("ScheduleLesson",
	barskema.String("date", func(l *ScheduleLesson) *string { return &l.Date }),
	barskema.String("discipline", func(l *ScheduleLesson) *string { return &l.Discipline }),
	barskema.Int("index", func(l *ScheduleLesson) *int { return &l.Index }),
	barskema.Bool("is_control_work", func(l *ScheduleLesson) *bool { return &l.IsControlWork }),
	barskema.OptInt("id", func(l *ScheduleLesson) **int { return &l.ID }),
	barskema.OptBool("has_auth_sferum", func(l *ScheduleLesson) **bool { return &l.HasAuthSferum }),
	barskema.OptString("office", func(l *ScheduleLesson) **string { return &l.Office }),
	barskema.OptString("study_time_name", func(l *ScheduleLesson) **string { return &l.StudyTimeName }),
	barskema.OptInt("study_time_shift", func(l *ScheduleLesson) **int { return &l.StudyTimeShift }),
	barskema.OptString("teacher", func(l *ScheduleLesson) **string { return &l.Teacher }),
	barskema.OptString("time_begin", func(l *ScheduleLesson) **string { return &l.TimeBegin }),
	barskema.OptString("time_end", func(l *ScheduleLesson) **string { return &l.TimeEnd }),
)

// ScheduleDay is the timetable of one day.
type ScheduleDay struct {
	Date       string
	Lessons    []ScheduleLesson
	IsWeekend  bool
	IsVacation bool
}

var ScheduleDaySchema = barskema.NewSchema("ScheduleDay",
	barskema.String("date", func(d *ScheduleDay) *string { return &d.Date }),
	barskema.ObjectList("lessons", ScheduleLessonSchema, func(d *ScheduleDay) *[]ScheduleLesson { return &d.Lessons }),
	barskema.Bool("is_weekend", func(d *ScheduleDay) *bool { return &d.IsWeekend }).Optional(),
	barskema.Bool("is_vacation", func(d *ScheduleDay) *bool { return &d.IsVacation }).Optional(),
).Prepare(StepDefaultLessons, defaultEmptyList("lessons"))

// ScheduleMonth is one week of the month timetable; Index orders the weeks.
type ScheduleMonth struct {
	Days  []ScheduleDay
	Index int
}

var ScheduleMonthSchema = barskema.NewSchema("ScheduleMonth",
	barskema.ObjectList("days", ScheduleDaySchema, func(m *ScheduleMonth) *[]ScheduleDay { return &m.Days }),
	barskema.Int("index", func(m *ScheduleMonth) *int { return &m.Index }),
)
