package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/drake/slide/animate"
)

// Dir returns the slide configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "slide")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// SettingsFile returns the path to settings.yaml
func SettingsFile() string {
	return filepath.Join(Dir(), "settings.yaml")
}

// Settings is the on-disk settings.yaml.
type Settings struct {
	Animation Animation `yaml:"animation"`
	Debug     Debug     `yaml:"debug"`
}

// Animation tunes the slide animation. Terminal rows are much coarser than
// pixels, so the defaults step one row at a time.
type Animation struct {
	Step       int `yaml:"step"`
	Margin     int `yaml:"margin"`
	IntervalMS int `yaml:"interval_ms"`
}

// Debug controls the debug log.
type Debug struct {
	LogFile string `yaml:"log_file"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		Animation: Animation{
			Step:       1,
			Margin:     1,
			IntervalMS: 30,
		},
		Debug: Debug{
			LogFile: filepath.Join(Dir(), "debug.log"),
		},
	}
}

// AnimateConfig converts the animation section.
func (s Settings) AnimateConfig() animate.Config {
	return animate.Config{
		Step:     s.Animation.Step,
		Margin:   s.Animation.Margin,
		Interval: time.Duration(s.Animation.IntervalMS) * time.Millisecond,
	}
}

// Load reads settings from path over the defaults. A missing file is not an
// error.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if s.Animation.Step < 1 {
		return Defaults(), fmt.Errorf("%s: animation.step must be positive, got %d", filepath.Base(path), s.Animation.Step)
	}
	if s.Animation.Margin < 1 {
		return Defaults(), fmt.Errorf("%s: animation.margin must be positive, got %d", filepath.Base(path), s.Animation.Margin)
	}
	if s.Animation.IntervalMS < 1 {
		return Defaults(), fmt.Errorf("%s: animation.interval_ms must be positive, got %d", filepath.Base(path), s.Animation.IntervalMS)
	}

	return s, nil
}
