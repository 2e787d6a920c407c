// Package config loads the barsctl configuration from YAML and the
// environment.
package config

import (
	"time"

	"github.com/edubars/barskema"
	"github.com/edubars/barskema/portal"
)

// Config is the root configuration.
type Config struct {
	Portal PortalConfig `yaml:"portal"`
	Decode DecodeConfig `yaml:"decode"`
	Log    LogConfig    `yaml:"log"`
}

// PortalConfig holds the portal connection settings.
type PortalConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"BARS_BASE_URL"   env-default:"https://xn--80atdl2c.xn--33-6kcadhwnl3cfdx.xn--p1ai/"`
	SessionID string        `yaml:"session_id" env:"BARS_SESSION_ID"`
	Timeout   time.Duration `yaml:"timeout"    env:"BARS_TIMEOUT"    env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"BARS_USER_AGENT" env-default:"barskema"`
}

// DecodeConfig bounds and tunes decoding of wire documents.
type DecodeConfig struct {
	Unknown  string `yaml:"unknown"   env:"BARS_UNKNOWN_POLICY" env-default:"warn"`
	MaxDepth int    `yaml:"max_depth" env:"BARS_MAX_DEPTH"      env-default:"64"`
	MaxBytes int64  `yaml:"max_bytes" env:"BARS_MAX_BYTES"      env-default:"8388608"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `yaml:"level"    env:"LOG_LEVEL"    env-default:"info"`
	Language string `yaml:"language" env:"LOG_LANGUAGE" env-default:"en"`
}

var unknownPolicies = map[string]barskema.UnknownPolicy{
	"warn":   barskema.UnknownWarn,
	"strip":  barskema.UnknownStrip,
	"strict": barskema.UnknownStrict,
}

// DecodeOpt returns the decode options; r receives the warnings.
func (c *Config) DecodeOpt(r barskema.Reporter) barskema.DecodeOpt {
	return barskema.DecodeOpt{Unknown: unknownPolicies[c.Decode.Unknown], Reporter: r}
}

// ReadOpt returns the wire reading limits.
func (c *Config) ReadOpt(r barskema.Reporter) barskema.ReadOpt {
	return barskema.ReadOpt{MaxDepth: c.Decode.MaxDepth, MaxBytes: c.Decode.MaxBytes, Reporter: r}
}

// PortalOptions returns the HTTP fetcher options.
func (c *Config) PortalOptions(r barskema.Reporter) portal.Options {
	return portal.Options{
		BaseURL:   c.Portal.BaseURL,
		SessionID: c.Portal.SessionID,
		Timeout:   c.Portal.Timeout,
		UserAgent: c.Portal.UserAgent,
		Read:      c.ReadOpt(r),
	}
}
