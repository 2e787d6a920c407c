package records

import "github.com/edubars/barskema"

// Event is a holiday or school event from the events widget.
type Event struct {
	Date    string
	DateStr string
	Theme   string
}

var EventSchema = barskema.NewSchema("Event",
	barskema.String("date", func(e *Event) *string { return &e.Date }),
	barskema.String("date_str", func(e *Event) *string { return &e.DateStr }),
	barskema.String("theme", func(e *Event) *string { return &e.Theme }),
)

// Birthday is an entry of the birthdays widget.
type Birthday struct {
	Date     string
	Fullname string
	Male     *bool
	Photo    *string
}

var BirthdaySchema = barskema.NewSchema("Birthday",
	barskema.String("date", func(b *Birthday) *string { return &b.Date }),
	barskema.String("fullname", func(b *Birthday) *string { return &b.Fullname }),
	barskema.OptBool("male", func(b *Birthday) **bool { return &b.Male }),
	barskema.OptString("photo", func(b *Birthday) **string { return &b.Photo }),
)
