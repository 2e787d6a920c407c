package jsonschema

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	Schema      string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Core
	Type    any    `json:"type,omitempty" yaml:"type,omitempty"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	Default any    `json:"default,omitempty" yaml:"default,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
}

// Draft is the dialect URI written by Document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Nullable returns a schema accepting s or null.
func Nullable(s *Schema) *Schema {
	if t, ok := s.Type.(string); ok && s.Items == nil && s.Properties == nil {
		cp := *s
		cp.Type = []string{t, "null"}
		return &cp
	}
	return &Schema{OneOf: []*Schema{s, {Type: "null"}}}
}

// Array wraps items into an array schema.
func Array(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// Document marks s as a top-level schema document.
func Document(s *Schema) *Schema {
	cp := *s
	cp.Schema = Draft
	return &cp
}
