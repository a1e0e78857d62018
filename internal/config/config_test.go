package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Assembler.Strict {
		t.Error("expected Strict=false by default")
	}
	if cfg.Assembler.AllowNonR8Base {
		t.Error("expected AllowNonR8Base=false by default")
	}
	if cfg.Output.Directory != "." {
		t.Errorf("expected Output.Directory=., got %s", cfg.Output.Directory)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Fatal("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("expected path to end with config.toml, got %s", path)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom should not error on a missing file: %v", err)
	}
	if cfg.Assembler.Strict {
		t.Error("expected default config when file doesn't exist")
	}
}

func TestLoadFrom_Valid(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.toml")

	contents := `
[assembler]
strict = true
allow_non_r8_base = true

[output]
directory = "build"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if !cfg.Assembler.Strict {
		t.Error("expected Strict=true")
	}
	if !cfg.Assembler.AllowNonR8Base {
		t.Error("expected AllowNonR8Base=true")
	}
	if cfg.Output.Directory != "build" {
		t.Errorf("expected Output.Directory=build, got %s", cfg.Output.Directory)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "invalid.toml")

	invalid := `
[assembler
strict = true
`
	if err := os.WriteFile(path, []byte(invalid), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected an error loading malformed TOML")
	}
}
