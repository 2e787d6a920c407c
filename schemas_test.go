package barskema_test

import "github.com/edubars/barskema"

type lesson struct {
	Index int
	Mark  string
	Type  string
	Note  *string
}

var lessonSchema = barskema.NewSchema("Lesson",
	barskema.Int("index", func(l *lesson) *int { return &l.Index }),
	barskema.String("mark", func(l *lesson) *string { return &l.Mark }),
	barskema.String("type", func(l *lesson) *string { return &l.Type }).Optional(),
	barskema.OptString("note", func(l *lesson) **string { return &l.Note }),
)

type day struct {
	Date                   string
	Lessons                []lesson
	Extra                  barskema.Value
	HomeworkTimeToComplete int
	Comment                string
}

var daySchema = barskema.NewSchema("Day",
	barskema.String("date", func(d *day) *string { return &d.Date }),
	barskema.ObjectList("lessons", lessonSchema, func(d *day) *[]lesson { return &d.Lessons }),
	barskema.Any("extra", func(d *day) *barskema.Value { return &d.Extra }),
	barskema.Int("homework_time_to_complete", func(d *day) *int { return &d.HomeworkTimeToComplete }),
	barskema.String("comment", func(d *day) *string { return &d.Comment }).Nullable(),
)

// validDay returns a fresh document accepted by daySchema.
func validDay() barskema.Document {
	return barskema.Document{
		"date": "2024-02-12",
		"lessons": []any{
			map[string]any{"index": 1, "mark": "5"},
			map[string]any{"index": 2, "mark": "", "type": "lab", "note": "bring goggles"},
		},
		"extra":                     map[string]any{"some_key": 1},
		"homework_time_to_complete": 30,
		"comment":                   nil,
	}
}
