package records

import (
	"github.com/edubars/barskema"
	"github.com/edubars/barskema/codec"
)

// Step names. They show up in Issue.Rule when a step fails.
const (
	StepDefaultLessons         = "default-lessons"
	StepMergeCamelKeys         = "merge-camel-keys"
	StepRenamePupilID          = "rename-pupil-id"
	StepMarkFromString         = "mark-from-string"
	StepAverageFromString      = "average-from-string"
	StepRenameDisciplineMarks  = "rename-discipline-marks"
	StepPeriodMarksFromStrings = "period-marks-from-strings"
	StepRenamePointWidth       = "rename-point-width"
)

// defaultEmptyList substitutes an empty list when key is absent. A day with
// no lessons is a weekend or a holiday, not a malformed document.
func defaultEmptyList(key string) func(barskema.Document) error {
	return func(doc barskema.Document) error {
		if _, ok := doc[key]; !ok {
			doc[key] = []any{}
		}
		return nil
	}
}

// renameKey moves from to to. The value under from replaces any value
// already stored under to.
func renameKey(from, to string) func(barskema.Document) error {
	return func(doc barskema.Document) error {
		if v, ok := doc[from]; ok {
			doc[to] = v
			delete(doc, from)
		}
		return nil
	}
}

// exportKey is renameKey for Export steps.
func exportKey(from, to string) func(barskema.Document) {
	rename := renameKey(from, to)
	return func(doc barskema.Document) { _ = rename(doc) }
}

// mergeKeys applies every from->to rename of pairs.
func mergeKeys(pairs ...[2]string) func(barskema.Document) error {
	return func(doc barskema.Document) error {
		for _, p := range pairs {
			_ = renameKey(p[0], p[1])(doc)
		}
		return nil
	}
}

// coerce rewrites the value under key with fn. Absent keys are left for the
// generic pass to report.
func coerce(key string, fn func(any) (any, error)) func(barskema.Document) error {
	return func(doc barskema.Document) error {
		v, ok := doc[key]
		if !ok || v == nil {
			return nil
		}
		c, err := fn(v)
		if err != nil {
			it := barskema.IssueAt(barskema.Root().Field(key), barskema.CodeInvalidType, err.Error(), map[string]any{"value": v})
			it.Field = key
			it.Cause = err
			return barskema.Issues{it}
		}
		doc[key] = c
		return nil
	}
}

var (
	markFromString         = coerce("mark", codec.CoerceInt)
	averageFromString      = coerce("average_mark", codec.CoerceFloat)
	periodMarksFromStrings = coerce("period_marks", codec.CoerceInts)
)
