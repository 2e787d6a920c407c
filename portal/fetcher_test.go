package portal_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/edubars/barskema"
	"github.com/edubars/barskema/portal"
)

func newFetcher(t *testing.T, h http.HandlerFunc) *portal.HTTPFetcher {
	t.Helper()
	srv := httptest.NewServer(h)
	f := portal.NewHTTPFetcher(portal.Options{BaseURL: srv.URL, SessionID: "s3cr3t"}, zaptest.NewLogger(t))
	t.Cleanup(func() {
		f.Close()
		srv.Close()
	})
	return f
}

func TestHTTPFetcher_SendsSessionAndQuery(t *testing.T) {
	f := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ScheduleService/GetDiary" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2024-02-12" {
			t.Errorf("date: %q", got)
		}
		c, err := r.Cookie("sessionid")
		if err != nil || c.Value != "s3cr3t" {
			t.Errorf("sessionid cookie: %v %v", c, err)
		}
		if r.Header.Get("Wrapper") != "BARS-Public-API" || r.Header.Get("User-Agent") != "barskema" {
			t.Errorf("headers: %v", r.Header)
		}
		w.Write([]byte(`{"days": []}`))
	})
	body, err := f.Fetch(context.Background(), portal.Call{
		Path:  "api/ScheduleService/GetDiary",
		Query: map[string][]string{"date": {"2024-02-12"}},
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	m, ok := body.(map[string]any)
	if !ok {
		t.Fatalf("body: %T", body)
	}
	if _, ok := m["days"]; !ok {
		t.Fatalf("days missing: %v", m)
	}
}

func TestHTTPFetcher_PostsForm(t *testing.T) {
	f := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("subject") != "0" {
			t.Errorf("form: %v", r.PostForm)
		}
		w.Write([]byte(`{"ok": true}`))
	})
	if _, err := f.Fetch(context.Background(), portal.Call{Path: "x", Form: map[string][]string{"subject": {"0"}}}); err != nil {
		t.Fatalf("fetch: %v", err)
	}
}

func TestHTTPFetcher_FaultMapping(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		target  error
		code    string
		generic bool
	}{
		{name: "unauthenticated", body: `{"faultcode":"Server.UserNotAuthenticated","faultstring":"no session"}`, target: portal.ErrUnauthenticated, code: portal.FaultUnauthenticated},
		{name: "unavailable", body: `<html>maintenance</html>`, target: portal.ErrUnavailable, code: portal.FaultUnavailable},
		{name: "empty body", body: ``, target: portal.ErrUnavailable, code: portal.FaultUnavailable},
		{name: "other fault", body: `{"faultcode":"Server.Internal","faultstring":"boom"}`, code: "Server.Internal", generic: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})
			_, err := f.Fetch(context.Background(), portal.Call{Path: "api/MarkService/GetTotalMarks"})
			var fault *portal.Fault
			if !errors.As(err, &fault) {
				t.Fatalf("want *portal.Fault, got %v", err)
			}
			if fault.Code != tt.code {
				t.Fatalf("code: %q", fault.Code)
			}
			if tt.generic {
				if errors.Is(err, portal.ErrUnauthenticated) || errors.Is(err, portal.ErrUnavailable) {
					t.Fatalf("generic fault matched a sentinel: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.target) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tt.target)
			}
		})
	}
}

func TestHTTPFetcher_UnreadableBodyKeepsCause(t *testing.T) {
	f := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"a": 1, "a": 2}`)
	})
	_, err := f.Fetch(context.Background(), portal.Call{Path: "x"})
	if !errors.Is(err, portal.ErrUnavailable) || !errors.Is(err, barskema.ErrParse) {
		t.Fatalf("want unavailable wrapping a parse issue, got %v", err)
	}
}
