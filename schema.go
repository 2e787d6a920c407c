package barskema

import (
	"context"
	"fmt"

	"github.com/edubars/barskema/jsonschema"
)

// Schema is the explicit field table of one record type R. Schemas are built
// once at package initialization and are safe for concurrent use afterwards.
type Schema[R any] struct {
	name    string
	fields  []Field[R]
	index   map[string]int
	prepare []prepareStep
	export  []exportStep
}

type prepareStep struct {
	name string
	fn   func(Document) error
}

type exportStep struct {
	name string
	fn   func(Document)
}

// NewSchema declares record type name with its fields in wire order.
// It panics on duplicate field names.
func NewSchema[R any](name string, fields ...Field[R]) *Schema[R] {
	s := &Schema[R]{name: name, index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if _, dup := s.index[f.name]; dup {
			panic(fmt.Sprintf("barskema: %s declares field %q twice", name, f.name))
		}
		s.index[f.name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

// Prepare registers a named step that rewrites a private copy of the wire
// document before the generic decode pass. Steps run in registration order.
func (s *Schema[R]) Prepare(name string, fn func(Document) error) *Schema[R] {
	s.prepare = append(s.prepare, prepareStep{name: name, fn: fn})
	return s
}

// Export registers a named step that rewrites the declared-name document
// produced by Encode, before name translation.
func (s *Schema[R]) Export(name string, fn func(Document)) *Schema[R] {
	s.export = append(s.export, exportStep{name: name, fn: fn})
	return s
}

// Name returns the record type name.
func (s *Schema[R]) Name() string { return s.name }

// FieldNames lists declared wire names in declaration order.
func (s *Schema[R]) FieldNames() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.name
	}
	return out
}

// Steps lists the names of the registered prepare and export steps.
func (s *Schema[R]) Steps() (prepare, export []string) {
	for _, st := range s.prepare {
		prepare = append(prepare, st.name)
	}
	for _, st := range s.export {
		export = append(export, st.name)
	}
	return prepare, export
}

func (s *Schema[R]) has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// JSONSchema describes the declared-name wire shape of R. Unknown keys are
// tolerated, so additionalProperties stays open.
func (s *Schema[R]) JSONSchema() (*jsonschema.Schema, error) {
	out := &jsonschema.Schema{
		Title:                s.name,
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(s.fields)),
		AdditionalProperties: true,
	}
	for _, f := range s.fields {
		js, err := f.jsonSchema()
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", s.name, f.name, err)
		}
		out.Properties[f.name] = js
		if !f.optional {
			out.Required = append(out.Required, f.name)
		}
	}
	return out, nil
}

// RecordSchema is the type-erased view of a Schema used by registries and
// tooling that do not know R statically.
type RecordSchema interface {
	Name() string
	FieldNames() []string
	JSONSchema() (*jsonschema.Schema, error)
	// DecodeValue decodes doc and returns the record bound into a Value.
	DecodeValue(ctx context.Context, doc Document, opts ...DecodeOpt) (Value, error)
}

// DecodeValue implements RecordSchema.
func (s *Schema[R]) DecodeValue(ctx context.Context, doc Document, opts ...DecodeOpt) (Value, error) {
	r, err := s.Decode(ctx, doc, opts...)
	if err != nil {
		return Value{}, err
	}
	return BindRecord(s, r), nil
}

var _ RecordSchema = (*Schema[struct{}])(nil)
