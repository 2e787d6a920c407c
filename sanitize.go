package barskema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/edubars/barskema/i18n"
)

// Cleaner turns one markup string into display text. brk is the paragraph
// separator. Implementations report an unclosed anchor with an error matching
// ErrMalformedMarkup.
type Cleaner interface {
	Clean(s, brk string) (string, error)
}

// CleanerFunc adapts a function to Cleaner.
type CleanerFunc func(s, brk string) (string, error)

func (f CleanerFunc) Clean(s, brk string) (string, error) { return f(s, brk) }

var (
	// TagStripper is the default Cleaner: anchors become [label](url),
	// paragraphs are separated by the break string and every other tag is
	// dropped. Entities are left as received.
	TagStripper Cleaner = CleanerFunc(stripMarkup)

	// MarkdownCleaner converts the markup to Markdown, keeping emphasis and
	// lists. Blocks are joined with the break string. Anchors are checked for
	// a closing tag first, like TagStripper.
	MarkdownCleaner Cleaner = CleanerFunc(markdownMarkup)
)

var (
	anchorOpenRe  = regexp.MustCompile(`(?is)<a(?:\s(?:[^>"']|"[^"]*"|'[^']*')*)?>`)
	anchorCloseRe = regexp.MustCompile(`(?i)</a\s*>`)
	hrefRe        = regexp.MustCompile(`(?is)\bhref\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s>]+))`)
	paragraphRe   = regexp.MustCompile(`(?i)<p(?:\s[^>]*)?>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	spacedBreakRe = regexp.MustCompile(` *(?:\x00 *)+`)
	blankLineRe   = regexp.MustCompile(`\n[ \t]*\n\s*`)
)

// breakMark stands in for the break string until tags are stripped, so
// spaces around an inserted break can be told apart from spaces in the text.
const breakMark = "\x00"

type markupError struct{ offset int }

func (e markupError) Error() string {
	return fmt.Sprintf("anchor at offset %d has no closing </a>", e.offset)
}

func (markupError) Is(target error) bool { return target == ErrMalformedMarkup }

func stripMarkup(s, brk string) (string, error) {
	out, err := rewriteAnchors(s)
	if err != nil {
		return "", err
	}
	out = paragraphRe.ReplaceAllStringFunc(out, func(tag string) string { return breakMark + tag })
	out = tagRe.ReplaceAllString(out, "")
	if brk == " " {
		out = spacedBreakRe.ReplaceAllString(out, " ")
	} else {
		out = strings.ReplaceAll(out, breakMark, brk)
	}
	return strings.TrimSpace(out), nil
}

// rewriteAnchors replaces every <a href="URL">LABEL</a> with [LABEL](URL).
// Quotes inside URL or LABEL pass through unescaped.
func rewriteAnchors(s string) (string, error) {
	if !anchorOpenRe.MatchString(s) {
		return s, nil
	}
	b := &strings.Builder{}
	rest, offset := s, 0
	for {
		open := anchorOpenRe.FindStringIndex(rest)
		if open == nil {
			b.WriteString(rest)
			return b.String(), nil
		}
		closing := anchorCloseRe.FindStringIndex(rest[open[1]:])
		if closing == nil {
			return "", markupError{offset: offset + open[0]}
		}
		b.WriteString(rest[:open[0]])
		label := strings.TrimSpace(tagRe.ReplaceAllString(rest[open[1]:open[1]+closing[0]], ""))
		if href := hrefOf(rest[open[0]:open[1]]); href != "" {
			b.WriteString("[" + label + "](" + href + ")")
		} else {
			b.WriteString(label)
		}
		end := open[1] + closing[1]
		rest, offset = rest[end:], offset+end
	}
}

func hrefOf(tag string) string {
	m := hrefRe.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

func markdownMarkup(s, brk string) (string, error) {
	if _, err := rewriteAnchors(s); err != nil {
		return "", err
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return "", fmt.Errorf("converting markup to markdown: %w", err)
	}
	return strings.Join(blankLineRe.Split(strings.TrimSpace(md), -1), brk), nil
}

// sanitizeRun carries the options of one Sanitize call.
type sanitizeRun struct {
	brk     string
	policy  MarkupPolicy
	cleaner Cleaner
	rep     Reporter
}

func newSanitizeRun(opt SanitizeOpt) *sanitizeRun {
	r := &sanitizeRun{brk: opt.Break, policy: opt.OnMalformed, cleaner: opt.Cleaner, rep: reporterOrNop(opt.Reporter)}
	if r.brk == "" {
		r.brk = "\n"
	}
	if r.cleaner == nil {
		r.cleaner = TagStripper
	}
	return r
}

func (r *sanitizeRun) str(s string, p PathRef) (string, error) {
	out, err := r.cleaner.Clean(s, r.brk)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, ErrMalformedMarkup) {
		return "", Issues{{Path: p.Pointer(), Code: CodeInvalidType, Message: err.Error(), Cause: err}}
	}
	it := Issue{
		Path:    p.Pointer(),
		Code:    CodeMalformedMarkup,
		Message: i18n.T(CodeMalformedMarkup, nil),
		Cause:   err,
	}
	if r.policy == MarkupKeepRaw {
		it.Severity = Warn
		r.rep.Report(it)
		return s, nil
	}
	return "", Issues{it}
}

func (r *sanitizeRun) value(v Value, p PathRef) (Value, error) {
	switch v.kind {
	case KindString:
		s, err := r.str(v.s, p)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case KindList:
		out := make([]Value, len(v.list))
		for i, e := range v.list {
			c, err := r.value(e, p.Index(i))
			if err != nil {
				return Value{}, err
			}
			out[i] = c
		}
		return Value{kind: KindList, list: out}, nil
	case KindMap:
		out := make(map[string]Value, len(v.m))
		for k, e := range v.m {
			c, err := r.value(e, p.Field(k))
			if err != nil {
				return Value{}, err
			}
			out[k] = c
		}
		return Value{kind: KindMap, m: out}, nil
	case KindRecord:
		rec, err := v.rec.sanitize(r, p)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindRecord, rec: rec}, nil
	}
	return v, nil
}

// sanitizeRecord returns a cleaned copy of rec. rec itself is never written.
func (s *Schema[R]) sanitizeRecord(run *sanitizeRun, rec R, p PathRef) (R, error) {
	out := rec
	for _, f := range s.fields {
		if f.sanitize == nil {
			continue
		}
		if err := f.sanitize(&out, run, p.Field(f.name)); err != nil {
			if iss, ok := AsIssues(err); ok {
				for i := range iss {
					if iss[i].Type == "" {
						iss[i].Type, iss[i].Field = s.name, f.name
					}
				}
				return rec, iss
			}
			return rec, err
		}
	}
	return out, nil
}

// SanitizeString cleans a single string.
func SanitizeString(s string, opts ...SanitizeOpt) (string, error) {
	out, err := newSanitizeRun(lastOpt(opts)).str(s, Root())
	if err != nil {
		return s, err
	}
	return out, nil
}

// Sanitize cleans every string leaf under v: list elements, map values and
// the declared fields of records. Map keys and non-string scalars are left as
// they are. Either every leaf is cleaned or, on error, v is returned
// unchanged.
func Sanitize(v Value, opts ...SanitizeOpt) (Value, error) {
	out, err := newSanitizeRun(lastOpt(opts)).value(v, Root())
	if err != nil {
		return v, err
	}
	return out, nil
}

// SanitizeRecord is Sanitize for a typed record.
func SanitizeRecord[R any](s *Schema[R], rec R, opts ...SanitizeOpt) (R, error) {
	return s.sanitizeRecord(newSanitizeRun(lastOpt(opts)), rec, Root())
}
