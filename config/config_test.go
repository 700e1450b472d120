package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("expected built-in defaults; got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	payload := "output_dir = \"renders\"\ndefault_samples = 256\nexposure = 1.5\n"
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "renders" {
		t.Fatalf("expected output dir override; got %s", cfg.OutputDir)
	}
	if cfg.DefaultSamples != 256 {
		t.Fatalf("expected 256 samples; got %d", cfg.DefaultSamples)
	}
	if cfg.Exposure != 1.5 {
		t.Fatalf("expected exposure 1.5; got %v", cfg.Exposure)
	}
	// Untouched settings keep their defaults.
	if cfg.WorkerPath != Default().WorkerPath {
		t.Fatalf("expected default worker path; got %s", cfg.WorkerPath)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.toml")
	if err := os.WriteFile(path, []byte("output_dir = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected malformed toml to be rejected")
	}
}

func TestOutputPaths(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = "out"

	if got := cfg.OutputPath("cornell"); got != filepath.Join("out", "cornell.png") {
		t.Fatalf("expected out/cornell.png; got %s", got)
	}

	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	exp := filepath.Join("out", "cornell_20260314-150926.png")
	if got := cfg.TimestampedOutputPath("cornell", ts); got != exp {
		t.Fatalf("expected %s; got %s", exp, got)
	}
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.OutputDir = filepath.Join(dir, "output")
	cfg.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{cfg.OutputDir, cfg.LogDir} {
		info, err := os.Stat(d)
		if err != nil {
			t.Fatal(err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %s to be a directory", d)
		}
	}
}
