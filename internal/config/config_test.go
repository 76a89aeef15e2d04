package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() with missing file failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() with missing file = %+v, want defaults", cfg)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chanwire.toml")
	data := []byte("queue_size = 512\nworkers = 2\nlog_level = \"debug\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.QueueSize != 512 {
		t.Errorf("QueueSize = %d, want 512", cfg.QueueSize)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chanwire.toml")
	if err := os.WriteFile(path, []byte("workers = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.QueueSize != Default().QueueSize {
		t.Errorf("QueueSize = %d, want default %d", cfg.QueueSize, Default().QueueSize)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chanwire.toml")
	if err := os.WriteFile(path, []byte("workers = 3\nqueue_size = 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CHANWIRE_WORKERS", "7")
	t.Setenv("CHANWIRE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Workers != 7 {
		t.Errorf("Workers = %d, want env override 7", cfg.Workers)
	}
	if cfg.QueueSize != 100 {
		t.Errorf("QueueSize = %d, want file value 100", cfg.QueueSize)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want env override %q", cfg.LogLevel, "warn")
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("CHANWIRE_QUEUE_SIZE", "not-a-number")

	if _, err := Load(""); err == nil {
		t.Error("Load() with bad CHANWIRE_QUEUE_SIZE succeeded, want error")
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chanwire.toml")
	if err := os.WriteFile(path, []byte("queue_size = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed TOML succeeded, want error")
	}
}
