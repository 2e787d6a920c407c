package barskema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindRecord:
		return "record"
	default:
		return "null"
	}
}

// Value is a closed tagged union over the shapes a portal payload may take:
// scalars, ordered lists, string-keyed maps and typed records.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
	rec  boundRecord
}

// boundRecord is a record paired with its schema, erased to a single type.
type boundRecord interface {
	typeName() string
	record() any
	encode(mode EncodeMode) Document
	sanitize(run *sanitizeRun, p PathRef) (boundRecord, error)
	equal(other boundRecord) bool
}

func NullValue() Value               { return Value{} }
func BoolValue(b bool) Value         { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value         { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value     { return Value{kind: KindFloat, f: f} }
func StringValue(s string) Value     { return Value{kind: KindString, s: s} }
func ListValue(items ...Value) Value { return Value{kind: KindList, list: items} }

// MapValue wraps m. The map is owned by the Value afterwards.
func MapValue(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindMap, m: m}
}

// BindRecord wraps a typed record so it can travel inside a Value.
func BindRecord[R any](s *Schema[R], r R) Value {
	return Value{kind: KindRecord, rec: recordValue[R]{schema: s, rec: r}}
}

// RecordAs extracts a record bound with BindRecord.
func RecordAs[R any](v Value) (R, bool) {
	var zero R
	if v.kind != KindRecord || v.rec == nil {
		return zero, false
	}
	r, ok := v.rec.record().(R)
	return r, ok
}

// MustValueOf is ValueOf for literals known to be convertible.
func MustValueOf(x any) Value {
	v, err := ValueOf(x)
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOf converts decoded JSON/YAML data (maps, slices, scalars, json.Number)
// into a Value.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("barskema: bad number %q: %w", string(t), err)
		}
		return FloatValue(f), nil
	case int:
		return IntValue(int64(t)), nil
	case int8:
		return IntValue(int64(t)), nil
	case int16:
		return IntValue(int64(t)), nil
	case int32:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case uint:
		return IntValue(int64(t)), nil
	case uint8:
		return IntValue(int64(t)), nil
	case uint16:
		return IntValue(int64(t)), nil
	case uint32:
		return IntValue(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return FloatValue(float64(t)), nil
		}
		return IntValue(int64(t)), nil
	case float32:
		return FloatValue(float64(t)), nil
	case float64:
		return FloatValue(t), nil
	case []any:
		out := make([]Value, len(t))
		for i, e := range t {
			v, err := ValueOf(e)
			if err != nil {
				return Value{}, err
			}
			out[i] = v
		}
		return Value{kind: KindList, list: out}, nil
	case []string:
		out := make([]Value, len(t))
		for i, e := range t {
			out[i] = StringValue(e)
		}
		return Value{kind: KindList, list: out}, nil
	case map[string]any:
		out := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := ValueOf(e)
			if err != nil {
				return Value{}, err
			}
			out[k] = v
		}
		return Value{kind: KindMap, m: out}, nil
	case map[string]Value:
		return MapValue(t), nil
	}
	return Value{}, fmt.Errorf("barskema: unsupported value type %T", x)
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) Len() int       { return len(v.list) + len(v.m) }
func (v Value) Items() []Value { return v.list }

// Entries returns the map entries. Callers must not modify the result.
func (v Value) Entries() map[string]Value { return v.m }

// Get returns the map entry for key.
func (v Value) Get(key string) (Value, bool) {
	e, ok := v.m[key]
	return e, ok
}

func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }
func (v Value) Bool() (bool, bool)  { return v.b, v.kind == KindBool }
func (v Value) Int() (int64, bool)  { return v.i, v.kind == KindInt }

// Float returns the numeric value of an int or float Value.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// TypeName returns the record type name of a record Value.
func (v Value) TypeName() string {
	if v.kind != KindRecord || v.rec == nil {
		return ""
	}
	return v.rec.typeName()
}

// Interface converts v back into plain data. Records are encoded with
// EncodeDebug.
func (v Value) Interface() any { return v.Encode(EncodeDebug) }

// Encode is Interface with records encoded in mode. Map keys are data and
// are never renamed.
func (v Value) Encode(mode EncodeMode) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = e.Encode(mode)
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, e := range v.m {
			out[k] = e.Encode(mode)
		}
		return out
	case KindRecord:
		return v.rec.encode(mode)
	}
	return nil
}

// Equal reports deep equality. It lets go-cmp compare Values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, e := range v.m {
			oe, ok := o.m[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}
		return true
	case KindRecord:
		return v.rec.equal(o.rec)
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindRecord:
		return v.rec.typeName() + fmt.Sprint(v.Interface())
	}
	return fmt.Sprint(v.Interface())
}

type recordValue[R any] struct {
	schema *Schema[R]
	rec    R
}

func (b recordValue[R]) typeName() string { return b.schema.name }
func (b recordValue[R]) record() any      { return b.rec }

func (b recordValue[R]) encode(mode EncodeMode) Document {
	return Encode(b.schema, b.rec, mode)
}

func (b recordValue[R]) sanitize(run *sanitizeRun, p PathRef) (boundRecord, error) {
	out, err := b.schema.sanitizeRecord(run, b.rec, p)
	if err != nil {
		return nil, err
	}
	return recordValue[R]{schema: b.schema, rec: out}, nil
}

func (b recordValue[R]) equal(other boundRecord) bool {
	o, ok := other.(recordValue[R])
	if !ok || o.schema != b.schema {
		return false
	}
	return reflect.DeepEqual(Encode(b.schema, b.rec, EncodeDebug), Encode(o.schema, o.rec, EncodeDebug))
}
