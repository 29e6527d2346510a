package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgl-umons/rabbit/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
default_format: json
model_path: /tmp/custom.json
label_mapping:
  automated: Bot
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q", cfg.DefaultFormat)
	}
	if cfg.ModelPath != "/tmp/custom.json" {
		t.Errorf("ModelPath = %q", cfg.ModelPath)
	}
	if cfg.LabelMapping["automated"] != "Bot" {
		t.Errorf("LabelMapping = %v", cfg.LabelMapping)
	}
}

func TestExcluded(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, `
excluded_events:
  - WatchEvent
  - ForkEvent
`))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if !cfg.Excluded("WatchEvent") || !cfg.Excluded("ForkEvent") {
		t.Error("configured event types must be excluded")
	}
	if cfg.Excluded("PushEvent") {
		t.Error("PushEvent is not configured out")
	}
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultFormat != "csv" {
		t.Errorf("DefaultFormat = %q, want csv", cfg.DefaultFormat)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	if _, err := LoadFrom(writeConfig(t, "default_format: [broken\n")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLabels(t *testing.T) {
	t.Run("defaults cover the bundled vocabulary", func(t *testing.T) {
		cfg := &Config{}
		labels, err := cfg.Labels()
		if err != nil {
			t.Fatalf("Labels: %v", err)
		}
		if labels.UserType("bot") != model.UserTypeBot {
			t.Error("bot must map to Bot by default")
		}
		if labels.UserType("human") != model.UserTypeHuman {
			t.Error("human must map to Human by default")
		}
	})

	t.Run("overrides extend the defaults", func(t *testing.T) {
		cfg := &Config{LabelMapping: map[string]string{"automated": "Bot"}}
		labels, err := cfg.Labels()
		if err != nil {
			t.Fatalf("Labels: %v", err)
		}
		if labels.UserType("automated") != model.UserTypeBot {
			t.Error("override not applied")
		}
		if labels.UserType("human") != model.UserTypeHuman {
			t.Error("defaults must survive overrides")
		}
	})

	t.Run("unknown target user type is rejected", func(t *testing.T) {
		cfg := &Config{LabelMapping: map[string]string{"automated": "Cyborg"}}
		if _, err := cfg.Labels(); err == nil {
			t.Error("expected error for mapping onto an unknown user type")
		}
	})

	t.Run("unmapped raw labels resolve to Invalid", func(t *testing.T) {
		cfg := &Config{}
		labels, err := cfg.Labels()
		if err != nil {
			t.Fatalf("Labels: %v", err)
		}
		if labels.UserType("something-new") != model.UserTypeInvalid {
			t.Error("unmapped labels must collapse to Invalid, never pass through")
		}
	})
}
