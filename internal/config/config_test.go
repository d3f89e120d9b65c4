package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/pylex/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pylex.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Format != "text" || cfg.Color != "auto" || cfg.FailFast {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "format: ndjson\ncolor: never\nfail_fast: true\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "ndjson" {
		t.Errorf("Format = %q, want ndjson", cfg.Format)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want never", cfg.Color)
	}
	if !cfg.FailFast {
		t.Error("FailFast = false, want true")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "format: yaml\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "yaml" || cfg.Color != "auto" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	if _, err := config.Load(writeFile(t, "format: xml\n")); err == nil {
		t.Error("unknown format accepted")
	}
	if _, err := config.Load(writeFile(t, "color: sometimes\n")); err == nil {
		t.Error("unknown color mode accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := config.Load(writeFile(t, "format: [\n")); err == nil {
		t.Error("malformed yaml accepted")
	}
}
