package barskema

// Document is a raw wire document: a JSON object decoded into Go values.
// Numbers arrive as json.Number (or int/float64 from other sources).
type Document = map[string]any

// UnknownPolicy controls how undeclared wire keys are handled.
type UnknownPolicy int

const (
	UnknownWarn   UnknownPolicy = iota // Drop unknown keys and report a warning.
	UnknownStrip                       // Drop unknown keys silently.
	UnknownStrict                      // Reject unknown keys with an error.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Error Severity = iota
	Warn
	Ignore
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Ignore:
		return "ignore"
	default:
		return "error"
	}
}

// DecodeOpt configures a decode call.
type DecodeOpt struct {
	Unknown  UnknownPolicy
	Reporter Reporter
	FailFast bool
}

// EncodeMode selects the field-name convention of Encode.
type EncodeMode int

const (
	// EncodeDebug keeps declared names and escapes reserved identifiers.
	EncodeDebug EncodeMode = iota
	// EncodeWire camel-joins declared names for outbound requests.
	EncodeWire
)

// MarkupPolicy decides what happens to a string with an unclosed anchor.
type MarkupPolicy int

const (
	// MarkupFail fails the whole sanitize call; the input is left untouched.
	MarkupFail MarkupPolicy = iota
	// MarkupKeepRaw keeps the offending string as received and reports a warning.
	MarkupKeepRaw
)

// SanitizeOpt configures Sanitize.
type SanitizeOpt struct {
	// Break is inserted before every paragraph tag. Empty means "\n". When
	// Break is a single space, spaces next to an inserted break collapse
	// into it; other runs of spaces in the text are kept.
	Break       string
	OnMalformed MarkupPolicy
	Reporter    Reporter
	// Cleaner replaces the default tag stripper when set.
	Cleaner Cleaner
}

// Strictness configures enforcement while reading wire bytes.
type Strictness struct {
	OnDuplicateKey Severity // Error or Warn; Ignore disables detection.
}

// ReadOpt bundles wire reading options.
type ReadOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	Reporter   Reporter
}

func lastOpt[T any](opts []T) T {
	var opt T
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
