package barskema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edubars/barskema"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		brk  string
		want string
	}{
		{name: "paragraphs", in: "<p>A</p><p>B</p>", want: "A\nB"},
		{name: "anchor", in: `<a href="http://x">Label</a> rest`, want: "[Label](http://x) rest"},
		{name: "single quoted href", in: `see <a target="_blank" href='http://x/?a=1'>it's here</a>`, want: "see [it's here](http://x/?a=1)"},
		{name: "anchor without href", in: `<a name="top">Top</a>`, want: "Top"},
		{name: "space break collapses", in: "A <p>B</p>", brk: " ", want: "A B"},
		{name: "space break absorbs neighbours", in: "A <p> B</p> <p>C</p>", brk: " ", want: "A B C"},
		{name: "space break keeps text spacing", in: "a  b<p>c</p>", brk: " ", want: "a  b c"},
		{name: "quoted angle bracket in href", in: `<a href="http://x/?a>b">L</a>`, want: "[L](http://x/?a>b)"},
		{name: "custom break", in: "<p>A</p><p>B</p>", brk: " | ", want: "| A | B"},
		{name: "entities kept", in: "<b>a &amp; b</b>", want: "a &amp; b"},
		{name: "plain", in: "  nothing to do ", want: "nothing to do"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := barskema.SanitizeString(tt.in, barskema.SanitizeOpt{Break: tt.brk})
			if err != nil {
				t.Fatalf("sanitize: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitize_NestedShapes(t *testing.T) {
	in := barskema.MustValueOf(map[string]any{
		"list": []any{"<b>x</b>", map[string]any{"field": "<i>y</i>"}, 3, true, nil},
	})
	got, err := barskema.Sanitize(in)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	want := barskema.MustValueOf(map[string]any{
		"list": []any{"x", map[string]any{"field": "y"}, 3, true, nil},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitize (-want +got):\n%s", diff)
	}
}

func TestSanitize_MapKeysUntouched(t *testing.T) {
	in := barskema.MustValueOf(map[string]any{"<b>k</b>": "<b>v</b>"})
	got, err := barskema.Sanitize(in)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	v, ok := got.Get("<b>k</b>")
	if s, _ := v.Str(); !ok || s != "v" {
		t.Fatalf("got %v", got)
	}
}

func TestSanitize_MalformedFailsWholeCall(t *testing.T) {
	in := barskema.MustValueOf([]any{"<p>ok</p>", `<a href="x">open`})
	got, err := barskema.Sanitize(in)
	if !errors.Is(err, barskema.ErrMalformedMarkup) {
		t.Fatalf("want malformed markup, got %v", err)
	}
	iss, _ := barskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/1" || iss[0].Code != barskema.CodeMalformedMarkup {
		t.Fatalf("issues: %v", iss)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("input should be returned unchanged (-want +got):\n%s", diff)
	}
}

func TestSanitize_KeepRawReportsWarning(t *testing.T) {
	in := barskema.MustValueOf([]any{"<p>ok</p>", `<a href="x">open`})
	col := &barskema.Collector{}
	got, err := barskema.Sanitize(in, barskema.SanitizeOpt{OnMalformed: barskema.MarkupKeepRaw, Reporter: col})
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	want := barskema.MustValueOf([]any{"ok", `<a href="x">open`})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("keep raw (-want +got):\n%s", diff)
	}
	w := col.Issues()
	if len(w) != 1 || w[0].Severity != barskema.Warn || w[0].Path != "/1" {
		t.Fatalf("warnings: %v", w)
	}
}

func TestSanitizeRecord_AllOrNothing(t *testing.T) {
	d := sampleDay()
	d.Date = "<b>Mon</b>"
	d.Lessons = append(d.Lessons, lesson{Index: 2, Mark: `<a href="x">5`})
	got, err := barskema.SanitizeRecord(daySchema, d)
	if !errors.Is(err, barskema.ErrMalformedMarkup) {
		t.Fatalf("want malformed markup, got %v", err)
	}
	iss, _ := barskema.AsIssues(err)
	if iss[0].Path != "/lessons/1/mark" || iss[0].Type != "Lesson" || iss[0].Field != "mark" {
		t.Fatalf("issue: %+v", iss[0])
	}
	if got.Date != "<b>Mon</b>" {
		t.Fatalf("no partial sanitize expected, got date %q", got.Date)
	}

	d.Lessons = d.Lessons[:1]
	got, err = barskema.SanitizeRecord(daySchema, d)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got.Date != "Mon" || d.Date != "<b>Mon</b>" {
		t.Fatalf("sanitized copy %q, original %q", got.Date, d.Date)
	}
}

func TestSanitize_BoundRecord(t *testing.T) {
	l := lesson{Index: 1, Mark: "<i>5</i>"}
	got, err := barskema.Sanitize(barskema.ListValue(barskema.BindRecord(lessonSchema, l)))
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	rec, ok := barskema.RecordAs[lesson](got.Items()[0])
	if !ok || rec.Mark != "5" {
		t.Fatalf("record: %+v %v", rec, ok)
	}
}

func TestMarkdownCleaner(t *testing.T) {
	got, err := barskema.SanitizeString("<p><b>bold</b> text</p>", barskema.SanitizeOpt{Cleaner: barskema.MarkdownCleaner})
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "**bold** text" {
		t.Fatalf("got %q", got)
	}
	for brk, want := range map[string]string{"": "A\nB", " | ": "A | B"} {
		got, err := barskema.SanitizeString("<p>A</p><p>B</p>", barskema.SanitizeOpt{Cleaner: barskema.MarkdownCleaner, Break: brk})
		if err != nil {
			t.Fatalf("sanitize: %v", err)
		}
		if got != want {
			t.Errorf("break %q: got %q, want %q", brk, got, want)
		}
	}
	if _, err := barskema.SanitizeString(`<a href="x">open`, barskema.SanitizeOpt{Cleaner: barskema.MarkdownCleaner}); !errors.Is(err, barskema.ErrMalformedMarkup) {
		t.Fatalf("markdown cleaner should reject unclosed anchors, got %v", err)
	}
}
