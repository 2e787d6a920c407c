package barskema

import (
	"fmt"

	"github.com/edubars/barskema/i18n"
)

// IssueAt creates an Issue at the given path with provided code, message and params map.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// MissingField builds a required-field issue.
func MissingField(typ, field string, p PathRef) Issue {
	return Issue{
		Path:    p.Pointer(),
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, map[string]string{"type": typ, "field": field}),
		Type:    typ,
		Types:   []string{typ},
		Field:   field,
		Hint:    "required field missing",
	}
}

// TypeMismatch builds an invalid-type issue describing the expected type and
// the Go type that was received.
func TypeMismatch(typ, field string, p PathRef, expected string, got any) Issue {
	gotName := "null"
	if got != nil {
		gotName = fmt.Sprintf("%T", got)
	}
	return Issue{
		Path:    p.Pointer(),
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected, "got": gotName}),
		Type:    typ,
		Types:   []string{typ},
		Field:   field,
		Hint:    "expected " + expected,
		Params:  map[string]any{"expected": expected, "got": gotName},
	}
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeInvalidType at the given path.
func issuesFromErr(typ, field string, p PathRef, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{
		Path:    p.Pointer(),
		Code:    CodeInvalidType,
		Message: err.Error(),
		Type:    typ,
		Types:   []string{typ},
		Field:   field,
		Cause:   err,
	}}
}
