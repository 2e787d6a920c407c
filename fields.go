package barskema

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/edubars/barskema/jsonschema"
)

// Field is one declared entry of a Schema. Fields are built with the typed
// constructors below; each takes the wire name and a selector returning the
// address of the Go field.
type Field[R any] struct {
	name     string
	expected string
	optional bool
	nullable bool
	schema   func() (*jsonschema.Schema, error)
	decode   func(dst *R, raw any, dc *decodeCtx, p PathRef)
	absent   func(dst *R)
	encode   func(src *R, mode EncodeMode) any
	// sanitize is nil for fields that hold no text.
	sanitize func(dst *R, run *sanitizeRun, p PathRef) error
}

// Optional marks the field optional: an absent or null wire value leaves the
// zero value in place instead of failing with MissingField.
func (f Field[R]) Optional() Field[R] {
	f.optional = true
	return f
}

// Nullable keeps the field required but accepts an explicit null, which
// leaves the zero value in place.
func (f Field[R]) Nullable() Field[R] {
	f.nullable = true
	return f
}

// Name returns the declared wire name.
func (f Field[R]) Name() string { return f.name }

func (f Field[R]) jsonSchema() (*jsonschema.Schema, error) {
	js, err := f.schema()
	if err != nil {
		return nil, err
	}
	if (f.optional || f.nullable) && js.Type != nil {
		js = jsonschema.Nullable(js)
	}
	return js, nil
}

func staticSchema(s jsonschema.Schema) func() (*jsonschema.Schema, error) {
	return func() (*jsonschema.Schema, error) {
		cp := s
		return &cp, nil
	}
}

func scalar[R, F any](name, expected, jsType string, conv func(any) (F, bool), sel func(*R) *F) Field[R] {
	return Field[R]{
		name:     name,
		expected: expected,
		schema:   staticSchema(jsonschema.Schema{Type: jsType}),
		decode: func(dst *R, raw any, dc *decodeCtx, p PathRef) {
			v, ok := conv(raw)
			if !ok {
				dc.fail(TypeMismatch(dc.typ(), name, p, expected, raw))
				return
			}
			*sel(dst) = v
		},
		absent: func(dst *R) {
			var zero F
			*sel(dst) = zero
		},
		encode: func(src *R, _ EncodeMode) any { return *sel(src) },
	}
}

func optScalar[R, F any](name, expected, jsType string, conv func(any) (F, bool), sel func(*R) **F) Field[R] {
	f := Field[R]{
		name:     name,
		expected: expected,
		optional: true,
		schema:   staticSchema(jsonschema.Schema{Type: jsType}),
		decode: func(dst *R, raw any, dc *decodeCtx, p PathRef) {
			v, ok := conv(raw)
			if !ok {
				dc.fail(TypeMismatch(dc.typ(), name, p, expected, raw))
				return
			}
			*sel(dst) = &v
		},
		absent: func(dst *R) { *sel(dst) = nil },
		encode: func(src *R, _ EncodeMode) any {
			if v := *sel(src); v != nil {
				return *v
			}
			return nil
		},
	}
	return f
}

func list[R, F any](name, expected, jsType string, conv func(any) (F, bool), sel func(*R) *[]F) Field[R] {
	return Field[R]{
		name:     name,
		expected: "list of " + expected,
		schema:   staticSchema(jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: jsType}}),
		decode: func(dst *R, raw any, dc *decodeCtx, p PathRef) {
			items, ok := raw.([]any)
			if !ok {
				dc.fail(TypeMismatch(dc.typ(), name, p, "list of "+expected, raw))
				return
			}
			out := make([]F, 0, len(items))
			for i, it := range items {
				v, ok := conv(it)
				if !ok {
					dc.fail(TypeMismatch(dc.typ(), name, p.Index(i), expected, it))
					if dc.stop() {
						return
					}
					continue
				}
				out = append(out, v)
			}
			*sel(dst) = out
		},
		absent: func(dst *R) { *sel(dst) = nil },
		encode: func(src *R, _ EncodeMode) any {
			vs := *sel(src)
			out := make([]any, len(vs))
			for i, v := range vs {
				out[i] = v
			}
			return out
		},
	}
}

// String declares a required string field.
func String[R any](name string, sel func(*R) *string) Field[R] {
	f := scalar(name, "string", "string", asString, sel)
	f.sanitize = func(dst *R, run *sanitizeRun, p PathRef) error {
		s, err := run.str(*sel(dst), p)
		if err != nil {
			return err
		}
		*sel(dst) = s
		return nil
	}
	return f
}

// Int declares a required integer field. Integral JSON numbers are accepted;
// numeric strings are not (use a Prepare step).
func Int[R any](name string, sel func(*R) *int) Field[R] {
	return scalar(name, "integer", "integer", asInt, sel)
}

// Float declares a required number field.
func Float[R any](name string, sel func(*R) *float64) Field[R] {
	return scalar(name, "number", "number", asFloat, sel)
}

// Bool declares a required boolean field.
func Bool[R any](name string, sel func(*R) *bool) Field[R] {
	return scalar(name, "boolean", "boolean", asBool, sel)
}

// OptString declares an optional string field; absent or null is nil.
func OptString[R any](name string, sel func(*R) **string) Field[R] {
	f := optScalar(name, "string", "string", asString, sel)
	f.sanitize = func(dst *R, run *sanitizeRun, p PathRef) error {
		cur := *sel(dst)
		if cur == nil {
			return nil
		}
		s, err := run.str(*cur, p)
		if err != nil {
			return err
		}
		*sel(dst) = &s
		return nil
	}
	return f
}

// OptInt declares an optional integer field; absent or null is nil.
func OptInt[R any](name string, sel func(*R) **int) Field[R] {
	return optScalar(name, "integer", "integer", asInt, sel)
}

// OptBool declares an optional boolean field; absent or null is nil.
func OptBool[R any](name string, sel func(*R) **bool) Field[R] {
	return optScalar(name, "boolean", "boolean", asBool, sel)
}

// Strings declares a list of strings.
func Strings[R any](name string, sel func(*R) *[]string) Field[R] {
	f := list(name, "string", "string", asString, sel)
	f.sanitize = func(dst *R, run *sanitizeRun, p PathRef) error {
		cur := *sel(dst)
		if cur == nil {
			return nil
		}
		out := make([]string, len(cur))
		for i, s := range cur {
			c, err := run.str(s, p.Index(i))
			if err != nil {
				return err
			}
			out[i] = c
		}
		*sel(dst) = out
		return nil
	}
	return f
}

// Ints declares a list of integers.
func Ints[R any](name string, sel func(*R) *[]int) Field[R] {
	return list(name, "integer", "integer", asInt, sel)
}

// Floats declares a list of numbers.
func Floats[R any](name string, sel func(*R) *[]float64) Field[R] {
	return list(name, "number", "number", asFloat, sel)
}

// Any declares a field of unknown shape. Null is a valid Value, so the key
// is required but may be null. Map keys inside it are data and are never
// renamed by Encode.
func Any[R any](name string, sel func(*R) *Value) Field[R] {
	return Field[R]{
		name:     name,
		expected: "any",
		nullable: true,
		schema:   staticSchema(jsonschema.Schema{}),
		decode: func(dst *R, raw any, dc *decodeCtx, p PathRef) {
			v, err := ValueOf(raw)
			if err != nil {
				dc.fail(TypeMismatch(dc.typ(), name, p, "json value", raw))
				return
			}
			*sel(dst) = v
		},
		absent: func(dst *R) { *sel(dst) = Value{} },
		encode: func(src *R, mode EncodeMode) any { return sel(src).Encode(mode) },
		sanitize: func(dst *R, run *sanitizeRun, p PathRef) error {
			v, err := run.value(*sel(dst), p)
			if err != nil {
				return err
			}
			*sel(dst) = v
			return nil
		},
	}
}

// Object declares a nested record field.
func Object[R, C any](name string, child *Schema[C], sel func(*R) *C) Field[R] {
	return Field[R]{
		name:     name,
		expected: child.name,
		schema:   child.JSONSchema,
		decode: func(dst *R, raw any, dc *decodeCtx, p PathRef) {
			doc, ok := raw.(map[string]any)
			if !ok {
				dc.fail(TypeMismatch(dc.typ(), name, p, "object "+child.name, raw))
				return
			}
			*sel(dst) = child.decodeDoc(dc, doc, p)
		},
		absent: func(dst *R) {
			var zero C
			*sel(dst) = zero
		},
		encode: func(src *R, mode EncodeMode) any {
			return child.encode(sel(src), mode, nil)
		},
		sanitize: func(dst *R, run *sanitizeRun, p PathRef) error {
			c, err := child.sanitizeRecord(run, *sel(dst), p)
			if err != nil {
				return err
			}
			*sel(dst) = c
			return nil
		},
	}
}

// ObjectList declares an ordered list of nested records.
func ObjectList[R, C any](name string, child *Schema[C], sel func(*R) *[]C) Field[R] {
	return Field[R]{
		name:     name,
		expected: "list of " + child.name,
		schema: func() (*jsonschema.Schema, error) {
			js, err := child.JSONSchema()
			if err != nil {
				return nil, err
			}
			return jsonschema.Array(js), nil
		},
		decode: func(dst *R, raw any, dc *decodeCtx, p PathRef) {
			items, ok := raw.([]any)
			if !ok {
				dc.fail(TypeMismatch(dc.typ(), name, p, "list of "+child.name, raw))
				return
			}
			out := make([]C, 0, len(items))
			for i, it := range items {
				ip := p.Index(i)
				doc, ok := it.(map[string]any)
				if !ok {
					dc.fail(TypeMismatch(dc.typ(), name, ip, "object "+child.name, it))
				} else {
					out = append(out, child.decodeDoc(dc, doc, ip))
				}
				if dc.stop() {
					return
				}
			}
			*sel(dst) = out
		},
		absent: func(dst *R) { *sel(dst) = nil },
		encode: func(src *R, mode EncodeMode) any {
			cs := *sel(src)
			out := make([]any, len(cs))
			for i := range cs {
				out[i] = child.encode(&cs[i], mode, nil)
			}
			return out
		},
		sanitize: func(dst *R, run *sanitizeRun, p PathRef) error {
			cur := *sel(dst)
			if cur == nil {
				return nil
			}
			out := make([]C, len(cur))
			for i, c := range cur {
				sc, err := child.sanitizeRecord(run, c, p.Index(i))
				if err != nil {
					return err
				}
				out[i] = sc
			}
			*sel(dst) = out
			return nil
		},
	}
}

func asString(x any) (string, bool) {
	s, ok := x.(string)
	return s, ok
}

func asBool(x any) (bool, bool) {
	b, ok := x.(bool)
	return b, ok
}

func asInt(x any) (int, bool) {
	switch t := x.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 0); err == nil {
			return int(i), true
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case uint:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return int(t), true
	case uint64:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	}
	return 0, false
}

// floatToInt rejects values outside [MinInt, MaxInt]. float64(MaxInt) rounds
// up to -MinInt, so the upper bound is exclusive.
func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f >= -float64(math.MinInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

func asFloat(x any) (float64, bool) {
	switch t := x.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case float32:
		return float64(t), true
	}
	if i, ok := asInt(x); ok {
		return float64(i), true
	}
	return 0, false
}
