package barskema

import "sync"

// Reporter receives non-fatal diagnostics (unknown fields, kept malformed
// markup, duplicate keys under Warn).
type Reporter interface {
	Report(Issue)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Issue)

func (f ReporterFunc) Report(it Issue) { f(it) }

type nopReporter struct{}

func (nopReporter) Report(Issue) {}

// NopReporter discards everything.
func NopReporter() Reporter { return nopReporter{} }

// Collector is a Reporter that keeps every issue. Safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	issues Issues
}

func (c *Collector) Report(it Issue) {
	c.mu.Lock()
	c.issues = append(c.issues, it)
	c.mu.Unlock()
}

// Issues returns a copy of the collected issues.
func (c *Collector) Issues() Issues {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(Issues(nil), c.issues...)
}

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return nopReporter{}
	}
	return r
}
