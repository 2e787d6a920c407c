package records

import "github.com/edubars/barskema"

// Material is a file attached to a lesson. URL is relative to the portal.
type Material struct {
	Name string
	URL  string
}

var MaterialSchema = barskema.NewSchema("Material",
	barskema.String("name", func(m *Material) *string { return &m.Name }),
	barskema.String("url", func(m *Material) *string { return &m.URL }),
)

// DiaryLesson is one lesson of a diary day.
type DiaryLesson struct {
	ID                     int
	Date                   string
	Attendance             string
	Comment                string
	Discipline             string
	Homework               string
	HomeworkTimeToComplete int
	IndHomeworkExists      bool
	Index                  int
	IsControlWork          bool
	Mark                   string
	MarkType               string
	Materials              []Material
	Office                 string
	Remarks                string
	ScheduleLessonType     string
	StudyTimeName          string
	StudyTimeShift         int
	Teacher                string
	Theme                  string
	TimeBegin              string
	TimeEnd                string
}

var DiaryLessonSchema = barskema.NewSchema("DiaryLesson",
	barskema.Int("id", func(l *DiaryLesson) *int { return &l.ID }),
	barskema.String("date", func(l *DiaryLesson) *string { return &l.Date }),
	barskema.String("attendance", func(l *DiaryLesson) *string { return &l.Attendance }).Nullable(),
	barskema.String("comment", func(l *DiaryLesson) *string { return &l.Comment }).Nullable(),
	barskema.String("discipline", func(l *DiaryLesson) *string { return &l.Discipline }),
	barskema.String("homework", func(l *DiaryLesson) *string { return &l.Homework }).Nullable(),
	barskema.Int("homework_time_to_complete", func(l *DiaryLesson) *int { return &l.HomeworkTimeToComplete }).Nullable(),
	barskema.Bool("ind_homework_exists", func(l *DiaryLesson) *bool { return &l.IndHomeworkExists }),
	barskema.Int("index", func(l *DiaryLesson) *int { return &l.Index }),
	barskema.Bool("is_control_work", func(l *DiaryLesson) *bool { return &l.IsControlWork }),
	barskema.String("mark", func(l *DiaryLesson) *string { return &l.Mark }).Nullable(),
	barskema.String("mark_type", func(l *DiaryLesson) *string { return &l.MarkType }).Nullable(),
	barskema.ObjectList("materials", MaterialSchema, func(l *DiaryLesson) *[]Material { return &l.Materials }).Nullable(),
	barskema.String("office", func(l *DiaryLesson) *string { return &l.Office }).Nullable(),
	barskema.String("remarks", func(l *DiaryLesson) *string { return &l.Remarks }).Nullable(),
	barskema.String("schedulelessontype", func(l *DiaryLesson) *string { return &l.ScheduleLessonType }).Nullable(),
	barskema.String("study_time_name", func(l *DiaryLesson) *string { return &l.StudyTimeName }).Nullable(),
	barskema.Int("study_time_shift", func(l *DiaryLesson) *int { return &l.StudyTimeShift }).Nullable(),
	barskema.String("teacher", func(l *DiaryLesson) *string { return &l.Teacher }).Nullable(),
	barskema.String("theme", func(l *DiaryLesson) *string { return &l.Theme }).Nullable(),
	barskema.String("time_begin", func(l *DiaryLesson) *string { return &l.TimeBegin }).Nullable(),
	barskema.String("time_end", func(l *DiaryLesson) *string { return &l.TimeEnd }).Nullable(),
)

// DiaryDay is one day of the diary. Lessons is empty on weekends and
// holidays.
type DiaryDay struct {
	Date       string
	Lessons    []DiaryLesson
	IsWeekend  bool
	IsVacation bool
}

var DiaryDaySchema = barskema.NewSchema("DiaryDay",
	barskema.String("date", func(d *DiaryDay) *string { return &d.Date }),
	barskema.ObjectList("lessons", DiaryLessonSchema, func(d *DiaryDay) *[]DiaryLesson { return &d.Lessons }),
	barskema.Bool("is_weekend", func(d *DiaryDay) *bool { return &d.IsWeekend }).Optional(),
	barskema.Bool("is_vacation", func(d *DiaryDay) *bool { return &d.IsVacation }).Optional(),
).Prepare(StepDefaultLessons, defaultEmptyList("lessons"))
