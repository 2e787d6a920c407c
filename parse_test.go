package barskema_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edubars/barskema"
)

const dayJSON = `{
	"date": "2024-02-12",
	"lessons": [{"index": 1, "mark": "5"}],
	"extra": {"a": [1, 2.5, "x"]},
	"homework_time_to_complete": 10,
	"comment": null
}`

func readIssue(t *testing.T, err error) barskema.Issue {
	t.Helper()
	iss, ok := barskema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("want exactly one issue, got %v", err)
	}
	return iss[0]
}

func TestReadValue_DuplicateKeyIsErrorByDefault(t *testing.T) {
	tests := []struct {
		in   string
		path string
	}{
		{in: `{"a":1,"a":2}`, path: "/a"},
		{in: `[{"a":1,"a":2}]`, path: "/0/a"},
		{in: `{"x":{"b~/c":1,"b~/c":2}}`, path: "/x/b~0~1c"},
	}
	for _, tt := range tests {
		_, err := barskema.ReadValue(context.Background(), barskema.JSONBytes([]byte(tt.in)))
		if !errors.Is(err, barskema.ErrParse) {
			t.Fatalf("%s: want parse error, got %v", tt.in, err)
		}
		it := readIssue(t, err)
		if it.Code != barskema.CodeDuplicateKey || it.Path != tt.path {
			t.Fatalf("%s: issue %+v", tt.in, it)
		}
	}
}

func TestReadValue_DuplicateKeyWarnAndIgnore(t *testing.T) {
	col := &barskema.Collector{}
	v, err := barskema.ReadValue(context.Background(), barskema.JSONBytes([]byte(`{"a":1,"a":2}`)), barskema.ReadOpt{
		Strictness: barskema.Strictness{OnDuplicateKey: barskema.Warn},
		Reporter:   col,
	})
	if err != nil {
		t.Fatalf("warn: %v", err)
	}
	if v.(map[string]any)["a"] == nil {
		t.Fatalf("value: %v", v)
	}
	w := col.Issues()
	if len(w) != 1 || w[0].Code != barskema.CodeDuplicateKey || w[0].Params["key"] != "a" {
		t.Fatalf("warnings: %v", w)
	}

	col = &barskema.Collector{}
	_, err = barskema.ReadValue(context.Background(), barskema.JSONBytes([]byte(`{"a":1,"a":2}`)), barskema.ReadOpt{
		Strictness: barskema.Strictness{OnDuplicateKey: barskema.Ignore},
		Reporter:   col,
	})
	if err != nil || len(col.Issues()) != 0 {
		t.Fatalf("ignore: %v %v", err, col.Issues())
	}
}

func TestReadValue_Limits(t *testing.T) {
	_, err := barskema.ReadValue(context.Background(), barskema.JSONBytes([]byte(`{"a":{"b":{"c":1}}}`)), barskema.ReadOpt{MaxDepth: 2})
	it := readIssue(t, err)
	if it.Code != barskema.CodeParseError || it.Path != "/a/b" {
		t.Fatalf("depth: %+v", it)
	}

	if _, err := barskema.ReadValue(context.Background(), barskema.JSONBytes([]byte(`{"a":{"b":1}}`)), barskema.ReadOpt{MaxDepth: 2}); err != nil {
		t.Fatalf("depth within limit: %v", err)
	}

	big := `{"text":"` + strings.Repeat("x", 4096) + `"}`
	_, err = barskema.ReadValue(context.Background(), barskema.JSONBytes([]byte(big)), barskema.ReadOpt{MaxBytes: 64})
	if it := readIssue(t, err); it.Code != barskema.CodeTruncated {
		t.Fatalf("bytes: %+v", it)
	}
	if !errors.Is(err, barskema.ErrParse) {
		t.Fatalf("truncated should match ErrParse")
	}
}

func TestReadValue_Malformed(t *testing.T) {
	for _, in := range []string{`{"a":1} {"b":2}`, `{"a":`, ``, `<html>`} {
		_, err := barskema.ReadValue(context.Background(), barskema.JSONBytes([]byte(in)))
		if !errors.Is(err, barskema.ErrParse) {
			t.Errorf("%q: want parse error, got %v", in, err)
		}
	}
}

func TestReadValue_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := barskema.ReadValue(ctx, barskema.JSONBytes([]byte(`{}`))); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestReadDocument_RejectsNonObject(t *testing.T) {
	_, err := barskema.ReadDocument(context.Background(), barskema.JSONBytes([]byte(`[1]`)))
	if !errors.Is(err, barskema.ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestParseFrom_JSONDrivers(t *testing.T) {
	t.Cleanup(barskema.UseDefaultJSONDriver)
	want, err := barskema.ParseFrom(context.Background(), daySchema, barskema.JSONBytes([]byte(dayJSON)))
	if err != nil {
		t.Fatalf("default driver: %v", err)
	}

	barskema.SetJSONDriver(barskema.EncodingJSONDriver())
	if got := barskema.CurrentJSONDriver().Name(); got != barskema.EncodingJSONDriver().Name() {
		t.Fatalf("driver = %q", got)
	}
	got, err := barskema.ParseFrom(context.Background(), daySchema, barskema.JSONReader(strings.NewReader(dayJSON)))
	if err != nil {
		t.Fatalf("encoding/json driver: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("drivers disagree (-default +encoding/json):\n%s", diff)
	}
	if want.HomeworkTimeToComplete != 10 || len(want.Lessons) != 1 {
		t.Fatalf("parsed: %+v", want)
	}
}

func TestParseFrom_YAML(t *testing.T) {
	const in = `
date: "2024-02-12"
lessons:
  - index: 1
    mark: "5"
    type: lab
extra: [1, two]
homework_time_to_complete: 10
comment: ~
`
	got, err := barskema.ParseFrom(context.Background(), daySchema, barskema.YAMLBytes([]byte(in)))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if got.Lessons[0].Type != "lab" || got.Extra.Len() != 2 {
		t.Fatalf("parsed: %+v", got)
	}

	_, err = barskema.ParseFrom(context.Background(), daySchema, barskema.YAMLBytes([]byte("date: a\ndate: b\n")))
	if it := readIssue(t, err); it.Code != barskema.CodeDuplicateKey || it.Path != "/date" {
		t.Fatalf("yaml duplicate: %+v", it)
	}
}

func TestParseFrom_DecodeOptions(t *testing.T) {
	in := `{"date":"d","lessons":[],"extra":null,"homework_time_to_complete":1,"comment":"c","zz":1}`
	_, err := barskema.ParseFrom(context.Background(), daySchema, barskema.JSONBytes([]byte(in)), barskema.ParseOpt{
		Decode: barskema.DecodeOpt{Unknown: barskema.UnknownStrict},
	})
	if !errors.Is(err, barskema.ErrUnknownField) {
		t.Fatalf("got %v", err)
	}
}

func TestParseListFrom(t *testing.T) {
	in := `[{"index":1,"mark":"5"},{"index":"2","mark":"4"}]`
	_, err := barskema.ParseListFrom(context.Background(), lessonSchema, barskema.JSONBytes([]byte(in)))
	if it := readIssue(t, err); it.Path != "/1/index" || it.Code != barskema.CodeInvalidType {
		t.Fatalf("issue: %+v", it)
	}

	got, err := barskema.ParseListFrom(context.Background(), lessonSchema, barskema.JSONBytes([]byte(`[{"index":1,"mark":"5"}]`)))
	if err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if diff := cmp.Diff([]lesson{{Index: 1, Mark: "5"}}, got); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}

	if _, err := barskema.ParseListFrom(context.Background(), lessonSchema, barskema.JSONBytes([]byte(`{}`))); !errors.Is(err, barskema.ErrTypeMismatch) {
		t.Fatalf("object instead of list: %v", err)
	}
}
