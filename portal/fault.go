package portal

import (
	"errors"
	"fmt"
)

// Fault codes sent by the portal in the "faultcode" key.
const (
	FaultUnauthenticated = "Server.UserNotAuthenticated"
	// FaultUnavailable is assigned locally when the body is not a readable
	// document, which is what the portal serves during maintenance.
	FaultUnavailable = "Client.Unavailable"
)

var (
	ErrUnauthenticated = errors.New("portal: session is not authenticated")
	ErrUnavailable     = errors.New("portal: site is unavailable")
)

// Fault is an error reported by the portal instead of a result.
type Fault struct {
	Code    string
	Message string
	Cause   error
}

func (f *Fault) Error() string {
	if f.Message == "" {
		return "portal: " + f.Code
	}
	return fmt.Sprintf("portal: %s: %s", f.Code, f.Message)
}

// Is matches ErrUnauthenticated and ErrUnavailable by fault code.
func (f *Fault) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return f.Code == FaultUnauthenticated
	case ErrUnavailable:
		return f.Code == FaultUnavailable
	}
	return false
}

func (f *Fault) Unwrap() error { return f.Cause }

// faultOf returns the fault carried by a decoded body, if any.
func faultOf(body any) (*Fault, bool) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, false
	}
	code, ok := m["faultcode"]
	if !ok {
		return nil, false
	}
	f := &Fault{Code: fmt.Sprint(code)}
	if s, ok := m["faultstring"].(string); ok {
		f.Message = s
	}
	return f, true
}
