package codec_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edubars/barskema/codec"
)

func TestIntFromString(t *testing.T) {
	n, err := codec.IntFromString(" 5 ")
	if err != nil || n != 5 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if _, err := codec.IntFromString("five"); !errors.Is(err, codec.ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
}

func TestFloatFromString_CommaSeparator(t *testing.T) {
	f, err := codec.FloatFromString("4,75")
	if err != nil || f != 4.75 {
		t.Fatalf("f=%v err=%v", f, err)
	}
}

func TestCoerceInt_PassesNumbersThrough(t *testing.T) {
	v, err := codec.CoerceInt(json.Number("3"))
	if err != nil || v != json.Number("3") {
		t.Fatalf("v=%v err=%v", v, err)
	}
	v, err = codec.CoerceInt("4")
	if err != nil || v != json.Number("4") {
		t.Fatalf("v=%v err=%v", v, err)
	}
}

func TestCoerceInts(t *testing.T) {
	in := []any{"5", json.Number("4"), "3"}
	got, err := codec.CoerceInts(in)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []any{json.Number("5"), json.Number("4"), json.Number("3")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if in[0] != "5" {
		t.Fatalf("input was modified: %v", in)
	}
	if _, err := codec.CoerceInts([]any{"5", "x"}); err == nil {
		t.Fatalf("expected error for non-numeric element")
	}
}
