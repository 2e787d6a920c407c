package barskema_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edubars/barskema"
)

func TestDecode_Valid(t *testing.T) {
	got, err := daySchema.Decode(context.Background(), validDay())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	note := "bring goggles"
	want := day{
		Date: "2024-02-12",
		Lessons: []lesson{
			{Index: 1, Mark: "5"},
			{Index: 2, Type: "lab", Note: &note},
		},
		Extra:                  barskema.MapValue(map[string]barskema.Value{"some_key": barskema.IntValue(1)}),
		HomeworkTimeToComplete: 30,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_ExtraKeysWarnOnce(t *testing.T) {
	doc := validDay()
	doc["zeta"] = 1
	doc["alpha"] = "x"
	col := &barskema.Collector{}
	d, err := daySchema.DecodeWithMeta(context.Background(), doc, barskema.DecodeOpt{Reporter: col})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w := col.Issues()
	if len(w) != 1 {
		t.Fatalf("want one warning, got %v", w)
	}
	if w[0].Code != barskema.CodeUnknownKey || w[0].Severity != barskema.Warn || w[0].Type != "Day" {
		t.Fatalf("unexpected warning: %+v", w[0])
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, w[0].Params["keys"]); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(w, d.Warnings); diff != "" {
		t.Fatalf("Decoded.Warnings should match the reporter (-want +got):\n%s", diff)
	}
	if !errors.Is(w[0], barskema.ErrUnknownField) {
		t.Fatalf("warning should match ErrUnknownField")
	}
}

func TestDecode_UnknownPolicies(t *testing.T) {
	doc := validDay()
	doc["lessons"].([]any)[0].(map[string]any)["zoom"] = "x"

	col := &barskema.Collector{}
	if _, err := daySchema.Decode(context.Background(), doc, barskema.DecodeOpt{Unknown: barskema.UnknownStrip, Reporter: col}); err != nil {
		t.Fatalf("strip: %v", err)
	}
	if n := len(col.Issues()); n != 0 {
		t.Fatalf("strip should be silent, got %d issues", n)
	}

	_, err := daySchema.Decode(context.Background(), doc, barskema.DecodeOpt{Unknown: barskema.UnknownStrict})
	if !errors.Is(err, barskema.ErrUnknownField) {
		t.Fatalf("strict: want unknown field error, got %v", err)
	}
	iss, _ := barskema.AsIssues(err)
	if iss[0].Path != "/lessons/0" || iss[0].Type != "Lesson" {
		t.Fatalf("strict issue: %+v", iss[0])
	}
}

func TestDecode_MissingRequired(t *testing.T) {
	doc := validDay()
	delete(doc, "date")
	got, err := daySchema.Decode(context.Background(), doc)
	if !errors.Is(err, barskema.ErrMissingField) {
		t.Fatalf("want missing field, got %v", err)
	}
	iss, _ := barskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != barskema.CodeRequired || iss[0].Field != "date" || iss[0].Path != "/date" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if diff := cmp.Diff(day{}, got); diff != "" {
		t.Fatalf("no partial record expected (-want +got):\n%s", diff)
	}
}

func TestDecode_NestedTypeMismatch(t *testing.T) {
	doc := validDay()
	doc["lessons"].([]any)[1].(map[string]any)["mark"] = 5
	_, err := daySchema.Decode(context.Background(), doc)
	iss, ok := barskema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("want one issue, got %v", err)
	}
	it := iss[0]
	if it.Code != barskema.CodeInvalidType || it.Path != "/lessons/1/mark" || it.Type != "Lesson" || it.Field != "mark" {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if diff := cmp.Diff([]string{"Day", "Lesson"}, it.Types); diff != "" {
		t.Fatalf("type chain (-want +got):\n%s", diff)
	}
	if it.Params["expected"] != "string" {
		t.Fatalf("params: %v", it.Params)
	}
}

func TestDecode_CollectsAllUnlessFailFast(t *testing.T) {
	doc := validDay()
	delete(doc, "date")
	doc["homework_time_to_complete"] = "soon"
	doc["lessons"].([]any)[0].(map[string]any)["index"] = 1.5

	_, err := daySchema.Decode(context.Background(), doc)
	iss, _ := barskema.AsIssues(err)
	if diff := cmp.Diff([]string{barskema.CodeRequired, barskema.CodeInvalidType, barskema.CodeInvalidType}, iss.Codes()); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}

	_, err = daySchema.Decode(context.Background(), doc, barskema.DecodeOpt{FailFast: true})
	iss, _ = barskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/date" {
		t.Fatalf("fail fast should stop at the first issue, got %v", iss)
	}
}

func TestDecode_Nulls(t *testing.T) {
	doc := validDay()
	doc["lessons"].([]any)[1].(map[string]any)["note"] = nil
	doc["lessons"].([]any)[1].(map[string]any)["type"] = nil
	doc["extra"] = nil
	d, err := daySchema.DecodeWithMeta(context.Background(), doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Value.Lessons[1].Note != nil || d.Value.Lessons[1].Type != "" || !d.Value.Extra.IsNull() {
		t.Fatalf("nulls: %+v", d.Value)
	}
	if !d.Presence.Has("/lessons/1/note", barskema.PresenceSeen|barskema.PresenceWasNull) {
		t.Fatalf("presence: %v", d.Presence)
	}

	doc["date"] = nil
	_, err = daySchema.Decode(context.Background(), doc)
	if !errors.Is(err, barskema.ErrTypeMismatch) {
		t.Fatalf("null for a required field: want type mismatch, got %v", err)
	}
}

func TestDecode_Presence(t *testing.T) {
	d, err := daySchema.DecodeWithMeta(context.Background(), validDay())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	pm := d.Presence
	if !pm.Has("/lessons/0/mark", barskema.PresenceSeen) {
		t.Errorf("mark should be seen")
	}
	if !pm.Has("/lessons/0/note", barskema.PresenceDefaultApplied) || pm.Has("/lessons/0/note", barskema.PresenceSeen) {
		t.Errorf("absent note should only carry DefaultApplied: %v", pm["/lessons/0/note"])
	}
	sub := pm.Under("/lessons/1")
	if !sub.Has("/note", barskema.PresenceSeen) {
		t.Errorf("Under: %v", sub)
	}
}

func TestDecode_UnescapesDebugKeys(t *testing.T) {
	doc := validDay()
	l := doc["lessons"].([]any)[1].(map[string]any)
	delete(l, "type")
	l["type_"] = "lab"
	col := &barskema.Collector{}
	got, err := daySchema.Decode(context.Background(), doc, barskema.DecodeOpt{Reporter: col})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Lessons[1].Type != "lab" || len(col.Issues()) != 0 {
		t.Fatalf("type_ should map back to type: %+v %v", got.Lessons[1], col.Issues())
	}
}

func TestDecode_DoesNotModifyInput(t *testing.T) {
	doc := validDay()
	doc["unknown"] = true
	before := validDay()
	before["unknown"] = true
	if _, err := daySchema.Decode(context.Background(), doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(before, doc); diff != "" {
		t.Fatalf("input modified (-before +after):\n%s", diff)
	}
}

func TestDecode_NilDocumentAndCanceledContext(t *testing.T) {
	if _, err := daySchema.Decode(context.Background(), nil); !errors.Is(err, barskema.ErrTypeMismatch) {
		t.Fatalf("nil document: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := daySchema.Decode(ctx, validDay()); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled: %v", err)
	}
}

func TestDecodeList_IndexPaths(t *testing.T) {
	bad := validDay()
	delete(bad, "date")
	_, err := barskema.DecodeList(context.Background(), daySchema, []any{validDay(), bad, "nope"})
	iss, _ := barskema.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/1/date" || iss[1].Path != "/2" {
		t.Fatalf("unexpected issues: %v", iss)
	}

	got, err := barskema.DecodeList(context.Background(), daySchema, []any{validDay(), validDay()})
	if err != nil || len(got) != 2 {
		t.Fatalf("decode list: %v %v", got, err)
	}
}

func TestNewSchema_DuplicateFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	barskema.NewSchema("Dup",
		barskema.Int("index", func(l *lesson) *int { return &l.Index }),
		barskema.Int("index", func(l *lesson) *int { return &l.Index }),
	)
}

func TestSchema_JSONSchema(t *testing.T) {
	js, err := daySchema.JSONSchema()
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	if diff := cmp.Diff([]string{"date", "lessons", "extra", "homework_time_to_complete", "comment"}, js.Required); diff != "" {
		t.Fatalf("required (-want +got):\n%s", diff)
	}
	if got := js.Properties["comment"].Type; !cmp.Equal(got, []string{"string", "null"}) {
		t.Fatalf("nullable comment type: %v", got)
	}
	if got := js.Properties["lessons"].Items.Properties["note"].Type; !cmp.Equal(got, []string{"string", "null"}) {
		t.Fatalf("optional note type: %v", got)
	}
}

func TestDecode_IntOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{name: "two to the 63", in: json.Number("9223372036854775808")},
		{name: "float two to the 63", in: float64(1 << 63)},
		{name: "below min int", in: json.Number("-9223372036854777856")},
		{name: "max uint", in: uint(math.MaxUint)},
		{name: "max uint64", in: uint64(math.MaxUint64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lessonSchema.Decode(context.Background(), barskema.Document{"index": tt.in, "mark": "5"})
			if !errors.Is(err, barskema.ErrTypeMismatch) {
				t.Fatalf("want type mismatch, got index=%d err=%v", got.Index, err)
			}
			if it := readIssue(t, err); it.Path != "/index" {
				t.Fatalf("issue: %+v", it)
			}
		})
	}

	got, err := lessonSchema.Decode(context.Background(), barskema.Document{"index": json.Number(strconv.Itoa(math.MinInt)), "mark": "5"})
	if err != nil || got.Index != math.MinInt {
		t.Fatalf("min int: index=%d err=%v", got.Index, err)
	}
}
