package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/edubars/barskema"
)

// sanitizeFlags are shared by decode and fetch.
type sanitizeFlags struct {
	enabled  bool
	brk      string
	markdown bool
	keepRaw  bool
}

func (f *sanitizeFlags) register(fs interface {
	BoolVar(p *bool, name string, value bool, usage string)
	StringVar(p *string, name string, value string, usage string)
}) {
	fs.BoolVar(&f.enabled, "sanitize", false, "clean HTML markup in text fields")
	fs.StringVar(&f.brk, "break", "\n", "paragraph separator used by --sanitize")
	fs.BoolVar(&f.markdown, "markdown", false, "convert markup to Markdown instead of stripping it")
	fs.BoolVar(&f.keepRaw, "keep-raw", false, "keep strings with malformed markup instead of failing")
}

func (f *sanitizeFlags) apply(v barskema.Value) (barskema.Value, error) {
	if !f.enabled {
		return v, nil
	}
	opt := barskema.SanitizeOpt{Break: f.brk, Reporter: reporter()}
	if f.markdown {
		opt.Cleaner = barskema.MarkdownCleaner
	}
	if f.keepRaw {
		opt.OnMalformed = barskema.MarkupKeepRaw
	}
	return barskema.Sanitize(v, opt)
}

// write prints data in the --format encoding.
func write(w io.Writer, data any) error {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = fmt.Fprintf(w, "---\n%s", b)
		return err
	case "json":
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func encodeMode(wire bool) barskema.EncodeMode {
	if wire {
		return barskema.EncodeWire
	}
	return barskema.EncodeDebug
}
