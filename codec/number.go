// Package codec holds the value coercions used by per-type steps and the
// date formats of the portal API.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when a string does not hold a number.
var ErrNotNumeric = errors.New("codec: not a number")

// IntFromString parses a decimal integer, ignoring surrounding spaces.
func IntFromString(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return n, nil
}

// FloatFromString parses a decimal number. A comma is accepted as the
// decimal separator.
func FloatFromString(s string) (float64, error) {
	t := strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return f, nil
}

// CoerceInt converts a string holding an integer into json.Number. Any other
// value is returned unchanged so numbers that already arrive as numbers pass
// through.
func CoerceInt(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	n, err := IntFromString(s)
	if err != nil {
		return nil, err
	}
	return json.Number(strconv.Itoa(n)), nil
}

// CoerceFloat is CoerceInt for decimal numbers.
func CoerceFloat(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	f, err := FloatFromString(s)
	if err != nil {
		return nil, err
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// CoerceInts applies CoerceInt to every element of a list. The result is a
// new list; non-list values are returned unchanged.
func CoerceInts(v any) (any, error) {
	items, ok := v.([]any)
	if !ok {
		return v, nil
	}
	out := make([]any, len(items))
	for i, it := range items {
		c, err := CoerceInt(it)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}
