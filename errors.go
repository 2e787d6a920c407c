package barskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeRequired        = "required"     // MissingField
	CodeInvalidType     = "invalid_type" // TypeMismatch
	CodeUnknownKey      = "unknown_key"  // UnknownField
	CodeMalformedMarkup = "malformed_markup"
	CodeDuplicateKey    = "duplicate_key"
	CodeParseError      = "parse_error"
	CodeTruncated       = "truncated"
)

// Sentinels matched by errors.Is against Issues and Issue values.
var (
	ErrMissingField    = errors.New("barskema: missing field")
	ErrTypeMismatch    = errors.New("barskema: type mismatch")
	ErrUnknownField    = errors.New("barskema: unknown field")
	ErrMalformedMarkup = errors.New("barskema: malformed markup")
	ErrParse           = errors.New("barskema: unreadable wire document")
)

func sentinelFor(code string) error {
	switch code {
	case CodeRequired:
		return ErrMissingField
	case CodeInvalidType:
		return ErrTypeMismatch
	case CodeUnknownKey:
		return ErrUnknownField
	case CodeMalformedMarkup:
		return ErrMalformedMarkup
	case CodeParseError, CodeDuplicateKey, CodeTruncated:
		return ErrParse
	}
	return nil
}

// Issue is a single decode, sanitize or read diagnostic.
type Issue struct {
	Path     string // JSON Pointer (for example: /lessons/2/mark).
	Code     string
	Message  string
	Severity Severity
	// Type is the record type owning Field. Types holds the owner chain from
	// the outermost record, e.g. [DiaryDay DiaryLesson].
	Type  string
	Types []string
	Field string
	Hint  string
	Cause error
	// Rule records the named per-type step that produced the issue.
	Rule   string
	Params map[string]any
}

// Error renders the issue as "code at /path (Owner.field)".
func (it Issue) Error() string {
	b := &strings.Builder{}
	path := it.Path
	if path == "" {
		path = "/"
	}
	fmt.Fprintf(b, "%s at %s", it.Code, path)
	if it.Type != "" {
		b.WriteString(" (")
		if len(it.Types) > 1 {
			b.WriteString(strings.Join(it.Types, " > "))
		} else {
			b.WriteString(it.Type)
		}
		if it.Field != "" {
			b.WriteString("." + it.Field)
		}
		b.WriteString(")")
	}
	return b.String()
}

// Is matches the sentinel for the issue code.
func (it Issue) Is(target error) bool {
	s := sentinelFor(it.Code)
	return s != nil && s == target
}

func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Error())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue matches target.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if it.Is(target) {
			return true
		}
	}
	return false
}

// Codes lists issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
}

// Errors returns only the issues with Error severity.
func (iss Issues) Errors() Issues {
	var out Issues
	for _, it := range iss {
		if it.Severity == Error {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var it Issue
	if errors.As(err, &it) {
		return Issues{it}, true
	}
	return nil, false
}
