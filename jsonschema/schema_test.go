package jsonschema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edubars/barskema/jsonschema"
)

func TestNullable_Scalar(t *testing.T) {
	got := jsonschema.Nullable(&jsonschema.Schema{Type: "integer"})
	want := &jsonschema.Schema{Type: []string{"integer", "null"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nullable mismatch (-want +got):\n%s", diff)
	}
}

func TestNullable_ObjectUsesOneOf(t *testing.T) {
	obj := &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{"a": {Type: "string"}}}
	got := jsonschema.Nullable(obj)
	if len(got.OneOf) != 2 || got.OneOf[0] != obj {
		t.Fatalf("expected oneOf [obj, null], got %+v", got)
	}
}

func TestDocument_SetsDialect(t *testing.T) {
	s := &jsonschema.Schema{Type: "object"}
	d := jsonschema.Document(s)
	if d.Schema != jsonschema.Draft || s.Schema != "" {
		t.Fatalf("document=%q original=%q", d.Schema, s.Schema)
	}
}
