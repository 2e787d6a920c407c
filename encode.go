package barskema

import (
	"strings"

	"github.com/stoewer/go-strcase"
)

// Encode converts r into a wire document. Nested records and lists encode
// recursively; Export steps run on the declared-name document before key
// translation. Encode is pure and never fails.
func Encode[R any](s *Schema[R], r R, mode EncodeMode) Document {
	return s.encode(&r, mode, nil)
}

func (s *Schema[R]) encode(r *R, mode EncodeMode, skip func(Field[R]) bool) Document {
	doc := make(Document, len(s.fields))
	for _, f := range s.fields {
		if skip != nil && skip(f) {
			continue
		}
		doc[f.name] = f.encode(r, mode)
	}
	for _, st := range s.export {
		st.fn(doc)
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[translateKey(k, mode)] = v
	}
	return out
}

func translateKey(k string, mode EncodeMode) string {
	if mode == EncodeWire {
		return CamelCase(k)
	}
	return EscapeReserved(k)
}

// CamelCase joins a snake-separated name into lower camel case:
// "homework_time_to_complete" becomes "homeworkTimeToComplete". Names without
// separators, already camel-cased ones such as "pointWidth" included, are
// returned unchanged.
func CamelCase(name string) string {
	if !strings.ContainsAny(name, "_-") {
		return name
	}
	return strcase.LowerCamelCase(name)
}

// Go keywords and predeclared identifiers.
var reserved = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		break case chan const continue default defer else fallthrough for func
		go goto if import interface map package range return select struct
		switch type var
		any bool byte comparable complex64 complex128 error float32 float64
		int int8 int16 int32 int64 rune string uint uint8 uint16 uint32 uint64
		uintptr true false iota nil
		append cap clear close complex copy delete imag len make max min new
		panic print println real recover`) {
		reserved[w] = struct{}{}
	}
}

// IsReserved reports whether name is a Go keyword or predeclared identifier.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// EscapeReserved appends "_" to reserved names.
func EscapeReserved(name string) string {
	if IsReserved(name) {
		return name + "_"
	}
	return name
}

// UnescapeReserved reverses EscapeReserved.
func UnescapeReserved(name string) string {
	if base, ok := strings.CutSuffix(name, "_"); ok && IsReserved(base) {
		return base
	}
	return name
}
