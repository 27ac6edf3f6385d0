package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/drake/slide/animate"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDirRespectsXDG(t *testing.T) {
	if os.Getenv("APPDATA") != "" {
		t.Skip("windows layout")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := Dir(); got != filepath.Join("/tmp/xdg", "slide") {
		t.Errorf("unexpected dir %q", got)
	}
	if got := InitFile(); got != filepath.Join("/tmp/xdg", "slide", "init.lua") {
		t.Errorf("unexpected init file %q", got)
	}
	if got := SettingsFile(); got != filepath.Join("/tmp/xdg", "slide", "settings.yaml") {
		t.Errorf("unexpected settings file %q", got)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Animation != Defaults().Animation {
		t.Errorf("expected defaults, got %+v", s.Animation)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeSettings(t, "animation:\n  step: 10\n  interval_ms: 10\n")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := s.AnimateConfig()
	if cfg.Step != 10 || cfg.Margin != 1 || cfg.Interval != 10*time.Millisecond {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero step", "animation:\n  step: 0\n", "animation.step"},
		{"zero margin", "animation:\n  margin: 0\n", "animation.margin"},
		{"negative interval", "animation:\n  interval_ms: -5\n", "animation.interval_ms"},
		{"not yaml", "animation: [", "parsing settings.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeSettings(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
			if s.Animation != Defaults().Animation {
				t.Errorf("bad file should fall back to defaults, got %+v", s.Animation)
			}
		})
	}
}

func TestDefaultsAreRowTuned(t *testing.T) {
	cfg := Defaults().AnimateConfig()
	if cfg.Step != 1 || cfg.Margin != 1 || cfg.Interval != 30*time.Millisecond {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg == animate.DefaultConfig() {
		t.Error("settings defaults should differ from the pixel-scale animator defaults")
	}
}
