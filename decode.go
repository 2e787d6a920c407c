package barskema

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/edubars/barskema/i18n"
)

// decodeCtx carries the state of one Decode call across nested records.
type decodeCtx struct {
	opt      DecodeOpt
	rep      Reporter
	types    []string
	errs     Issues
	warnings Issues
	presence PresenceMap
}

func newDecodeCtx(opt DecodeOpt) *decodeCtx {
	return &decodeCtx{opt: opt, rep: reporterOrNop(opt.Reporter), presence: PresenceMap{"/": PresenceSeen}}
}

func (dc *decodeCtx) typ() string {
	if n := len(dc.types); n > 0 {
		return dc.types[n-1]
	}
	return ""
}

func (dc *decodeCtx) chain() []string { return slices.Clone(dc.types) }

func (dc *decodeCtx) fail(it Issue) {
	it.Severity = Error
	if len(dc.types) > 0 {
		it.Types = dc.chain()
		if it.Type == "" {
			it.Type = dc.typ()
		}
	}
	dc.errs = append(dc.errs, it)
}

func (dc *decodeCtx) warn(it Issue) {
	it.Severity = Warn
	dc.warnings = append(dc.warnings, it)
	dc.rep.Report(it)
}

func (dc *decodeCtx) stop() bool { return dc.opt.FailFast && len(dc.errs) > 0 }

// Decode converts a wire document into R. Unknown keys never fail the call
// unless DecodeOpt.Unknown is UnknownStrict; every other issue does, and the
// zero R is returned together with the collected Issues.
func (s *Schema[R]) Decode(ctx context.Context, doc Document, opts ...DecodeOpt) (R, error) {
	d, err := s.DecodeWithMeta(ctx, doc, opts...)
	return d.Value, err
}

// DecodeWithMeta is Decode that also returns presence flags and the warnings
// that were sent to the reporter.
func (s *Schema[R]) DecodeWithMeta(ctx context.Context, doc Document, opts ...DecodeOpt) (Decoded[R], error) {
	if err := ctx.Err(); err != nil {
		return Decoded[R]{}, err
	}
	dc := newDecodeCtx(lastOpt(opts))
	if doc == nil {
		dc.types = []string{s.name}
		dc.fail(TypeMismatch(s.name, "", Root(), "object "+s.name, nil))
		return Decoded[R]{}, dc.errs
	}
	v := s.decodeDoc(dc, doc, Root())
	if len(dc.errs) > 0 {
		return Decoded[R]{Warnings: dc.warnings}, dc.errs
	}
	return Decoded[R]{Value: v, Presence: dc.presence, Warnings: dc.warnings}, nil
}

// DecodeList decodes a top-level list of wire documents, preserving order.
// Issue paths start with the element index.
func DecodeList[R any](ctx context.Context, s *Schema[R], items []any, opts ...DecodeOpt) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dc := newDecodeCtx(lastOpt(opts))
	out := make([]R, 0, len(items))
	for i, it := range items {
		p := Root().Index(i)
		doc, ok := it.(map[string]any)
		if !ok {
			dc.types = []string{s.name}
			dc.fail(TypeMismatch(s.name, "", p, "object "+s.name, it))
			dc.types = nil
		} else {
			out = append(out, s.decodeDoc(dc, doc, p))
		}
		if dc.stop() {
			break
		}
	}
	if len(dc.errs) > 0 {
		return nil, dc.errs
	}
	return out, nil
}

// decodeDoc runs the prepare steps and the generic pass for one record
// instance located at p.
func (s *Schema[R]) decodeDoc(dc *decodeCtx, doc Document, p PathRef) R {
	var out R
	dc.types = append(dc.types, s.name)
	defer func() { dc.types = dc.types[:len(dc.types)-1] }()

	work := maps.Clone(doc)
	// Fields already reported by a failing step are not decoded again.
	var failed map[string]bool
	for _, st := range s.prepare {
		if err := st.fn(work); err != nil {
			for _, it := range issuesFromErr(s.name, "", Root(), err) {
				it.Path = p.Join(it.Path)
				it.Rule = st.name
				if it.Field != "" {
					if failed == nil {
						failed = map[string]bool{}
					}
					failed[it.Field] = true
				}
				dc.fail(it)
			}
			if dc.stop() {
				return out
			}
		}
	}
	s.unescapeKeys(work)

	var unknown []string
	for k := range work {
		if !s.has(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 && dc.opt.Unknown != UnknownStrip {
		slices.Sort(unknown)
		it := Issue{
			Path:    p.Pointer(),
			Code:    CodeUnknownKey,
			Message: i18n.T(CodeUnknownKey, map[string]string{"type": s.name, "keys": strings.Join(unknown, ", ")}),
			Type:    s.name,
			Types:   dc.chain(),
			Params:  map[string]any{"keys": unknown},
		}
		if dc.opt.Unknown == UnknownStrict {
			dc.fail(it)
			if dc.stop() {
				return out
			}
		} else {
			dc.warn(it)
		}
	}

	for _, f := range s.fields {
		if failed[f.name] {
			continue
		}
		fp := p.Field(f.name)
		key := fp.Pointer()
		raw, ok := work[f.name]
		switch {
		case !ok && f.optional:
			f.absent(&out)
			dc.presence[key] |= PresenceDefaultApplied
		case !ok:
			dc.fail(MissingField(s.name, f.name, fp))
		case raw == nil:
			dc.presence[key] |= PresenceSeen | PresenceWasNull
			if f.optional || f.nullable {
				f.absent(&out)
			} else {
				dc.fail(TypeMismatch(s.name, f.name, fp, f.expected, nil))
			}
		default:
			dc.presence[key] |= PresenceSeen
			f.decode(&out, raw, dc, fp)
		}
		if dc.stop() {
			return out
		}
	}
	return out
}

// unescapeKeys maps debug-dump keys such as "type_" back to declared reserved
// names.
func (s *Schema[R]) unescapeKeys(work Document) {
	for k, v := range work {
		base := UnescapeReserved(k)
		if base == k || !s.has(base) || s.has(k) {
			continue
		}
		if _, clash := work[base]; clash {
			continue
		}
		delete(work, k)
		work[base] = v
	}
}
