// Package yaml tokenizes YAML documents with gopkg.in/yaml.v3 so fixtures
// written in YAML flow through the same enforcement as JSON.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/edubars/barskema/internal/engine"
)

// Name identifies the driver in diagnostics.
const Name = "yaml.v3"

// ErrEmpty is returned for input without a YAML document.
var ErrEmpty = errors.New("yaml: empty document")

// NewBytes parses b and returns its token stream. Parse errors surface on the
// first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	toks, err := Tokens(b)
	if err != nil {
		return eng.ErrSource(err)
	}
	return &source{SliceSource: eng.NewSliceSource(toks), size: int64(len(b))}
}

// NewReader reads r fully and delegates to NewBytes.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return eng.ErrSource(fmt.Errorf("yaml: read: %w", err))
	}
	return NewBytes(b)
}

type source struct {
	*eng.SliceSource
	size int64
}

func (s *source) Location() int64 { return s.size }

// Tokens flattens the first YAML document in b into engine tokens. Mapping
// keys are kept in document order, duplicates included, so the enforcement
// layer can see them.
func Tokens(b []byte) ([]eng.Token, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("yaml: %w", err)
	}
	w := &walker{}
	if err := w.node(&doc, 0); err != nil {
		return nil, err
	}
	return w.toks, nil
}

// maxAliasDepth bounds alias expansion.
const maxAliasDepth = 64

type walker struct {
	toks []eng.Token
}

func (w *walker) emit(t eng.Token) {
	t.Offset = -1
	w.toks = append(w.toks, t)
}

func (w *walker) node(n *yaml.Node, aliases int) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return ErrEmpty
		}
		return w.node(n.Content[0], aliases)
	case yaml.AliasNode:
		if aliases >= maxAliasDepth {
			return fmt.Errorf("yaml: line %d: alias nesting too deep", n.Line)
		}
		return w.node(n.Alias, aliases+1)
	case yaml.MappingNode:
		w.emit(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: line %d: mapping key must be a scalar", k.Line)
			}
			w.emit(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := w.node(n.Content[i+1], aliases); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndObject})
		return nil
	case yaml.SequenceNode:
		w.emit(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := w.node(c, aliases); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndArray})
		return nil
	case yaml.ScalarNode:
		return w.scalar(n)
	}
	return fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
}

func (w *walker) scalar(n *yaml.Node) error {
	var v any
	if err := n.Decode(&v); err != nil {
		return fmt.Errorf("yaml: line %d: %w", n.Line, err)
	}
	switch t := v.(type) {
	case nil:
		w.emit(eng.Token{Kind: eng.KindNull})
	case bool:
		w.emit(eng.Token{Kind: eng.KindBool, Bool: t})
	case int:
		w.emit(eng.Token{Kind: eng.KindNumber, Number: strconv.Itoa(t)})
	case int64:
		w.emit(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(t, 10)})
	case uint64:
		w.emit(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatUint(t, 10)})
	case float64:
		w.emit(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(t, 'g', -1, 64)})
	case string:
		w.emit(eng.Token{Kind: eng.KindString, String: t})
	default:
		// timestamps and binary stay textual
		w.emit(eng.Token{Kind: eng.KindString, String: n.Value})
	}
	return nil
}
