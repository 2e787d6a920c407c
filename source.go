package barskema

import (
	"io"
	"sync"

	eng "github.com/edubars/barskema/internal/engine"
	drvgojson "github.com/edubars/barskema/source/gojson"
	drvjson "github.com/edubars/barskema/source/json"
	drvyaml "github.com/edubars/barskema/source/yaml"
)

// TokenKind enumerates JSON token kinds.
type TokenKind = eng.Kind

const (
	TokenBeginObject TokenKind = eng.KindBeginObject
	TokenEndObject   TokenKind = eng.KindEndObject
	TokenBeginArray  TokenKind = eng.KindBeginArray
	TokenEndArray    TokenKind = eng.KindEndArray
	TokenKey         TokenKind = eng.KindKey
	TokenString      TokenKind = eng.KindString
	TokenNumber      TokenKind = eng.KindNumber
	TokenBool        TokenKind = eng.KindBool
	TokenNull        TokenKind = eng.KindNull
)

// Token describes a token in the input stream. Offset records the byte position
// when known (-1 otherwise). Numbers are kept as text.
type Token = eng.Token

// Source is a stream of tokens for one wire document.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source. The default implementation
// is backed by github.com/goccy/go-json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json driver.
func UseDefaultJSONDriver() { SetJSONDriver(goJSONDriver{}) }

// CurrentJSONDriver returns the driver used by JSONReader and JSONBytes.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// EncodingJSONDriver returns the encoding/json backed driver.
func EncodingJSONDriver() JSONDriver { return encodingJSONDriver{} }

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return drvgojson.NewReader(r) }
func (goJSONDriver) NewBytes(b []byte) Source     { return drvgojson.NewBytes(b) }
func (goJSONDriver) Name() string                 { return drvgojson.Name }

type encodingJSONDriver struct{}

func (encodingJSONDriver) NewReader(r io.Reader) Source { return drvjson.NewReader(r) }
func (encodingJSONDriver) NewBytes(b []byte) Source     { return drvjson.NewBytes(b) }
func (encodingJSONDriver) Name() string                 { return drvjson.Name }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// YAMLBytes wraps a YAML document as a Source. Only the first document of a
// stream is read.
func YAMLBytes(b []byte) Source { return drvyaml.NewBytes(b) }

// YAMLReader reads r fully and wraps it as a YAML Source.
func YAMLReader(r io.Reader) Source { return drvyaml.NewReader(r) }
