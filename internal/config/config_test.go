package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "4500" {
		t.Fatalf("default port = %q, want 4500", cfg.Server.Port)
	}
	if cfg.Database.DBName != "blackboard" {
		t.Fatalf("default dbname = %q, want blackboard", cfg.Database.DBName)
	}
	if cfg.Database.SSLMode != "prefer" {
		t.Fatalf("default sslmode = %q, want prefer", cfg.Database.SSLMode)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("default mode must be development")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"9000\"\n  mode: production\ndatabase:\n  host: db.internal\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Fatalf("host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.IsDevelopment() {
		t.Fatal("mode production must not report development")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Database.Host != "env-host" {
		t.Fatalf("host = %q, want env-host", cfg.Database.Host)
	}
	if cfg.Database.MaxOpenConns != 42 {
		t.Fatalf("max open conns = %d, want 42", cfg.Database.MaxOpenConns)
	}
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected invalid conn_max_lifetime to fail validation")
	}
}

func TestConnectionString(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := "host=localhost port=5432 user=postgres password=postgres dbname=blackboard sslmode=prefer"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Fatalf("connection string = %q, want %q", got, want)
	}
}
