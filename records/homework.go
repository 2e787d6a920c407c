package records

import "github.com/edubars/barskema"

// HomeworkLesson is the homework of one lesson together with what is due for
// the next one.
type HomeworkLesson struct {
	Date                       string
	Discipline                 string
	Homework                   string
	HomeworkTimeToComplete     int
	IndividualHomeworks        []string
	Materials                  []Material
	NextHomework               string
	NextIndividualHomeworks    []string
	NextMaterials              []Material
	NextHomeworkTimeToComplete int
	ScheduleLessonType         string
	Teacher                    string
	Theme                      string
}

var HomeworkLessonSchema = barskema.NewSchema("HomeworkLesson",
	barskema.String("date", func(h *HomeworkLesson) *string { return &h.Date }),
	barskema.String("discipline", func(h *HomeworkLesson) *string { return &h.Discipline }),
	barskema.String("homework", func(h *HomeworkLesson) *string { return &h.Homework }).Nullable(),
	barskema.Int("homework_time_to_complete", func(h *HomeworkLesson) *int { return &h.HomeworkTimeToComplete }).Nullable(),
	barskema.Strings("individual_homeworks", func(h *HomeworkLesson) *[]string { return &h.IndividualHomeworks }).Nullable(),
	barskema.ObjectList("materials", MaterialSchema, func(h *HomeworkLesson) *[]Material { return &h.Materials }).Nullable(),
	barskema.String("next_homework", func(h *HomeworkLesson) *string { return &h.NextHomework }).Nullable(),
	barskema.Strings("next_individual_homeworks", func(h *HomeworkLesson) *[]string { return &h.NextIndividualHomeworks }).Nullable(),
	barskema.ObjectList("next_materials", MaterialSchema, func(h *HomeworkLesson) *[]Material { return &h.NextMaterials }).Nullable(),
	barskema.Int("next_homework_time_to_complete", func(h *HomeworkLesson) *int { return &h.NextHomeworkTimeToComplete }).Nullable(),
	barskema.String("schedulelessontype", func(h *HomeworkLesson) *string { return &h.ScheduleLessonType }).Nullable(),
	barskema.String("teacher", func(h *HomeworkLesson) *string { return &h.Teacher }).Nullable(),
	barskema.String("theme", func(h *HomeworkLesson) *string { return &h.Theme }).Nullable(),
).Prepare(StepMergeCamelKeys, mergeKeys(
	[2]string{"individualHomeworks", "individual_homeworks"},
	[2]string{"nextHomework", "next_homework"},
	[2]string{"nextIndividualHomeworks", "next_individual_homeworks"},
	[2]string{"nextMaterials", "next_materials"},
))

// HomeworkDay groups the homework of one weekday.
type HomeworkDay struct {
	Date      string
	Homeworks []HomeworkLesson
	Name      string
}

var HomeworkDaySchema = barskema.NewSchema("HomeworkDay",
	barskema.String("date", func(d *HomeworkDay) *string { return &d.Date }),
	barskema.ObjectList("homeworks", HomeworkLessonSchema, func(d *HomeworkDay) *[]HomeworkLesson { return &d.Homeworks }),
	barskema.String("name", func(d *HomeworkDay) *string { return &d.Name }),
)
