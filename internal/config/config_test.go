package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing-is-fine-when-default"))
	if err == nil {
		t.Fatal("expected error: an explicit path must exist")
	}

	// Default path missing is allowed; run from a directory without one.
	wd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.PublicRateLimit != 30 {
		t.Errorf("expected default rate limit 30, got %d", cfg.PublicRateLimit)
	}
	if cfg.AuthRequired {
		t.Error("expected auth not required by default")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `addr: ":9000"
frontend_url: "https://prismworks.example"
auth_required: true
public_rate_limit: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("expected addr :9000, got %q", cfg.Addr)
	}
	if cfg.FrontendURL != "https://prismworks.example" {
		t.Errorf("unexpected frontend url %q", cfg.FrontendURL)
	}
	if !cfg.AuthRequired {
		t.Error("expected auth_required true")
	}
	if cfg.PublicRateLimit != 5 {
		t.Errorf("expected rate limit 5, got %d", cfg.PublicRateLimit)
	}
	// Unset keys keep their defaults.
	if cfg.DatabaseURL == "" {
		t.Error("expected default database_url preserved")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9000\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ADDR", ":7070")
	t.Setenv("PUBLIC_RATE_LIMIT", "60")
	t.Setenv("AUTH_REQUIRED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("expected env addr to win, got %q", cfg.Addr)
	}
	if cfg.PublicRateLimit != 60 {
		t.Errorf("expected rate limit 60, got %d", cfg.PublicRateLimit)
	}
	if !cfg.AuthRequired {
		t.Error("expected AUTH_REQUIRED=true to apply")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [not: closed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("public_rate_limit: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative rate limit")
	}
}
