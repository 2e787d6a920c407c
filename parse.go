package barskema

import (
	"context"
	"errors"

	eng "github.com/edubars/barskema/internal/engine"
)

// ParseOpt bundles the options of ParseFrom.
type ParseOpt struct {
	Read   ReadOpt
	Decode DecodeOpt
}

// ReadValue reads exactly one value from src, enforcing the duplicate key,
// depth and size limits of opt. Numbers are returned as json.Number.
func ReadValue(ctx context.Context, src Source, opts ...ReadOpt) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opt := lastOpt(opts)
	rep := reporterOrNop(opt.Reporter)
	enforced := eng.WrapWithEnforcement(ctxSource{ctx: ctx, inner: src}, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink: func(si eng.SimpleIssue) {
			rep.Report(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Severity: Warn, Params: map[string]any{"key": si.Key}})
		},
	})
	v, err := eng.DecodeSingle(enforced)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, readIssues(err)
	}
	return v, nil
}

// ReadDocument is ReadValue for inputs whose top level must be an object.
func ReadDocument(ctx context.Context, src Source, opts ...ReadOpt) (Document, error) {
	v, err := ReadValue(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{TypeMismatch("", "", Root(), "object", v)}
	}
	return doc, nil
}

// ParseFrom reads one wire document from src and decodes it with s.
func ParseFrom[R any](ctx context.Context, s *Schema[R], src Source, opts ...ParseOpt) (R, error) {
	opt := lastOpt(opts)
	doc, err := ReadDocument(ctx, src, opt.Read)
	if err != nil {
		var zero R
		return zero, err
	}
	return s.Decode(ctx, doc, opt.Decode)
}

// ParseListFrom reads a top-level list from src and decodes every element.
func ParseListFrom[R any](ctx context.Context, s *Schema[R], src Source, opts ...ParseOpt) ([]R, error) {
	opt := lastOpt(opts)
	v, err := ReadValue(ctx, src, opt.Read)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, Issues{TypeMismatch(s.name, "", Root(), "list of "+s.name, v)}
	}
	return DecodeList(ctx, s, items, opt.Decode)
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Ignore:
		return eng.DupIgnore
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupError
	}
}

func readIssues(err error) Issues {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		it := Issue{Path: ie.Path, Code: ie.Code, Message: ie.Message, Cause: err}
		if ie.Key != "" {
			it.Params = map[string]any{"key": ie.Key}
		}
		return Issues{it}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}

// ctxSource stops reading once ctx is done.
type ctxSource struct {
	ctx   context.Context
	inner Source
}

func (c ctxSource) NextToken() (Token, error) {
	if err := c.ctx.Err(); err != nil {
		return Token{}, err
	}
	return c.inner.NextToken()
}

func (c ctxSource) Location() int64 { return c.inner.Location() }
