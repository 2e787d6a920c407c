// Package records declares the schemas of the records served by the BARS
// school portal.
//
// Every record is a plain struct paired with a package-level
// *barskema.Schema. Portal quirks (camelCase duplicates, numbers sent as
// strings, renamed keys) are handled by named Prepare and Export steps on the
// schema that owns them, so the generic decode pass never special-cases a
// type.
package records

import (
	"fmt"
	"slices"

	"github.com/edubars/barskema"
)

// Registry maps snake_case record names to their schemas.
var Registry = map[string]barskema.RecordSchema{
	"diary_lesson":             DiaryLessonSchema,
	"diary_day":                DiaryDaySchema,
	"material":                 MaterialSchema,
	"homework_lesson":          HomeworkLessonSchema,
	"homework_day":             HomeworkDaySchema,
	"unlocked_discipline":      UnlockedDisciplineSchema,
	"account_info":             AccountInfoSchema,
	"pupil_info":               PupilInfoSchema,
	"schedule_lesson":          ScheduleLessonSchema,
	"schedule_day":             ScheduleDaySchema,
	"schedule_month":           ScheduleMonthSchema,
	"employee":                 EmployeeSchema,
	"school_info":              SchoolInfoSchema,
	"pupil":                    PupilSchema,
	"class_info":               ClassInfoSchema,
	"mark":                     MarkSchema,
	"summary_marks_discipline": SummaryMarksDisciplineSchema,
	"subperiod":                SubperiodSchema,
	"summary_marks":            SummaryMarksSchema,
	"total_marks_discipline":   TotalMarksDisciplineSchema,
	"total_marks":              TotalMarksSchema,
	"attendance_data":          AttendanceDataSchema,
	"series_item":              SeriesItemSchema,
	"progress_data":            ProgressDataSchema,
	"event":                    EventSchema,
	"birthday":                 BirthdaySchema,
}

// Lookup returns the schema registered under name.
func Lookup(name string) (barskema.RecordSchema, error) {
	s, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("records: unknown record type %q", name)
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	out := make([]string, 0, len(Registry))
	for k := range Registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
