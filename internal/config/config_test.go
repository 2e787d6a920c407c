package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edubars/barskema"
	"github.com/edubars/barskema/internal/config"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barsctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Portal.Timeout != 10*time.Second || cfg.Portal.UserAgent != "barskema" {
		t.Errorf("portal defaults: %+v", cfg.Portal)
	}
	if cfg.Decode.Unknown != "warn" || cfg.Decode.MaxDepth != 64 || cfg.Decode.MaxBytes != 8388608 {
		t.Errorf("decode defaults: %+v", cfg.Decode)
	}
	if cfg.Log.Level != "info" || cfg.Log.Language != "en" {
		t.Errorf("log defaults: %+v", cfg.Log)
	}
	if !errors.Is(cfg.RequireSession(), config.ErrNoSession) {
		t.Errorf("expected missing session")
	}
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := writeYAML(t, `
portal:
  base_url: "https://portal.example/"
  session_id: "from-yaml"
  timeout: "3s"
decode:
  unknown: "strict"
  max_depth: 16
log:
  level: "debug"
  language: "ru"
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("BARS_SESSION_ID", "from-env")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Portal.SessionID != "from-env" {
		t.Errorf("env should win over yaml: %q", cfg.Portal.SessionID)
	}
	if cfg.Portal.Timeout != 3*time.Second || cfg.Decode.MaxDepth != 16 {
		t.Errorf("yaml values: %+v %+v", cfg.Portal, cfg.Decode)
	}
	if got := cfg.DecodeOpt(nil).Unknown; got != barskema.UnknownStrict {
		t.Errorf("unknown policy: %v", got)
	}
	if got := cfg.PortalOptions(nil).Read.MaxDepth; got != 16 {
		t.Errorf("read max depth: %d", got)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown policy", env: map[string]string{"BARS_UNKNOWN_POLICY": "loose"}},
		{name: "negative depth", env: map[string]string{"BARS_MAX_DEPTH": "-1"}},
		{name: "relative base url", env: map[string]string{"BARS_BASE_URL": "portal"}},
		{name: "log level", env: map[string]string{"LOG_LEVEL": "chatty"}},
		{name: "language", env: map[string]string{"LOG_LANGUAGE": "ja"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("CONFIG_PATH", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := config.Load(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
