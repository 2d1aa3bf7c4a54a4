package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadServe_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadServe()
	if err != nil {
		t.Fatalf("LoadServe: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.LogFormat != "json" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Errorf("timeouts: %v %v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
}

func TestLoadServe_Env(t *testing.T) {
	t.Setenv("CAREBALANCE_ADDR", "127.0.0.1:9191")
	t.Setenv("CAREBALANCE_LOG_LEVEL", "debug")
	t.Setenv("CAREBALANCE_READ_TIMEOUT", "3s")

	cfg, err := LoadServe()
	if err != nil {
		t.Fatalf("LoadServe: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9191" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.ReadTimeout != 3*time.Second {
		t.Errorf("read timeout: got %v", cfg.ReadTimeout)
	}
}

func TestLoadServe_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CAREBALANCE_ADDR=:7070\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := LoadServe()
	if err != nil {
		t.Fatalf("LoadServe: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("addr: got %q, want :7070", cfg.Addr)
	}
}

func TestLoadServe_UnreadableDotEnv(t *testing.T) {
	dir := t.TempDir()
	// a directory named .env exists but cannot be read as a file
	if err := os.Mkdir(filepath.Join(dir, ".env"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if _, err := LoadServe(); err == nil {
		t.Fatal("expected error for unreadable .env")
	}
}
