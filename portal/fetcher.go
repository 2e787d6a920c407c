// Package portal talks to the BARS school portal API and decodes its
// responses into records.
package portal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edubars/barskema"
)

// Call is one portal request. Form, when set, is sent as an urlencoded POST
// body.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

// Fetcher performs a Call and returns the decoded body. Portal faults are
// returned as *Fault.
type Fetcher interface {
	Fetch(ctx context.Context, call Call) (any, error)
}

// DefaultBaseURL is the public portal address.
const DefaultBaseURL = "https://xn--80atdl2c.xn--33-6kcadhwnl3cfdx.xn--p1ai/"

// Options configures an HTTPFetcher.
type Options struct {
	BaseURL   string
	SessionID string
	Timeout   time.Duration
	UserAgent string
	// Read bounds the response documents.
	Read barskema.ReadOpt
}

// HTTPFetcher is the Fetcher backed by net/http. The session id is sent as
// the "sessionid" cookie on every request.
type HTTPFetcher struct {
	baseURL   string
	sessionID string
	header    http.Header
	client    *http.Client
	read      barskema.ReadOpt
	log       *zap.Logger
}

// NewHTTPFetcher returns a fetcher for opts. A nil logger disables logging.
func NewHTTPFetcher(opts Options, logger *zap.Logger) *HTTPFetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(opts.BaseURL, "/") {
		opts.BaseURL += "/"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "barskema"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := http.Header{}
	h.Set("User-Agent", opts.UserAgent)
	h.Set("Wrapper", "BARS-Public-API")
	h.Set("Manufacturer", "barskema")
	return &HTTPFetcher{
		baseURL:   opts.BaseURL,
		sessionID: opts.SessionID,
		header:    h,
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
		read: opts.Read,
		log:  logger.With(zap.String("adapter", "portal")),
	}
}

// BaseURL returns the normalized portal address, ending in "/".
func (f *HTTPFetcher) BaseURL() string { return f.baseURL }

// Close releases idle connections.
func (f *HTTPFetcher) Close() { f.client.CloseIdleConnections() }

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, call Call) (any, error) {
	req, err := f.newRequest(ctx, call)
	if err != nil {
		return nil, fmt.Errorf("portal: %s: create request: %w", call.Path, err)
	}
	f.log.Debug("portal request", zap.String("method", req.Method), zap.String("path", call.Path))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal: %s: %w", call.Path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("portal: %s: read body: %w", call.Path, err)
	}
	body, err := barskema.ReadValue(ctx, barskema.JSONBytes(b), f.read)
	if err != nil {
		f.log.Warn("portal body unreadable", zap.String("path", call.Path), zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &Fault{
			Code:    FaultUnavailable,
			Message: fmt.Sprintf("status %d, unreadable body", resp.StatusCode),
			Cause:   err,
		}
	}
	if fault, ok := faultOf(body); ok {
		f.log.Debug("portal fault", zap.String("path", call.Path), zap.String("code", fault.Code))
		return nil, fault
	}
	f.log.Debug("portal response", zap.String("path", call.Path), zap.Int("status", resp.StatusCode), zap.Int("bytes", len(b)))
	return body, nil
}

func (f *HTTPFetcher) newRequest(ctx context.Context, call Call) (*http.Request, error) {
	method := call.Method
	if method == "" {
		method = http.MethodGet
		if call.Form != nil {
			method = http.MethodPost
		}
	}
	u := f.baseURL + strings.TrimPrefix(call.Path, "/")
	if len(call.Query) > 0 {
		u += "?" + call.Query.Encode()
	}
	var body io.Reader
	if call.Form != nil {
		body = strings.NewReader(call.Form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header = f.header.Clone()
	if call.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: f.sessionID})
	return req, nil
}
