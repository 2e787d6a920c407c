package config

import (
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap/zapcore"
)

// ErrNoSession is returned by RequireSession when no session id is set.
var ErrNoSession = errors.New("portal.session_id is not set (BARS_SESSION_ID)")

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if _, ok := unknownPolicies[c.Decode.Unknown]; !ok {
		return fmt.Errorf("decode.unknown must be warn, strip or strict (got %q)", c.Decode.Unknown)
	}
	if c.Decode.MaxDepth < 0 {
		return fmt.Errorf("decode.max_depth must be >= 0 (got %d)", c.Decode.MaxDepth)
	}
	if c.Decode.MaxBytes < 0 {
		return fmt.Errorf("decode.max_bytes must be >= 0 (got %d)", c.Decode.MaxBytes)
	}
	if c.Portal.Timeout <= 0 {
		return fmt.Errorf("portal.timeout must be > 0 (got %s)", c.Portal.Timeout)
	}
	u, err := url.Parse(c.Portal.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("portal.base_url must be an absolute URL (got %q)", c.Portal.BaseURL)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Language {
	case "en", "ru":
	default:
		return fmt.Errorf("log.language must be en or ru (got %q)", c.Log.Language)
	}
	return nil
}

// RequireSession reports whether portal calls can be made.
func (c *Config) RequireSession() error {
	if c.Portal.SessionID == "" {
		return ErrNoSession
	}
	return nil
}
