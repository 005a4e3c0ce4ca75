package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "jwt_secret: shhh\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Port)
	}
	if cfg.TokenTTLHours != 24 {
		t.Errorf("token_ttl_hours = %d, want 24", cfg.TokenTTLHours)
	}
	if cfg.ImageDir != "img" {
		t.Errorf("image_dir = %q, want img", cfg.ImageDir)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"port: 8080",
		"env: production",
		"jwt_secret: shhh",
		"token_ttl_hours: 48",
		"database:",
		"  host: db.internal",
		"  port: 3307",
		"  user: api",
		"  password: pw",
		"  name: landing",
	}, "\n")+"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 || cfg.IsDev() {
		t.Errorf("cfg = %+v", cfg)
	}
	dsn := cfg.ResolveDSN()
	if !strings.Contains(dsn, "api:pw@tcp(db.internal:3307)/landing") {
		t.Errorf("dsn = %q", dsn)
	}
}

func TestLoadExplicitDSNWins(t *testing.T) {
	path := writeConfig(t, "jwt_secret: shhh\ndsn: user:pass@tcp(somewhere:3306)/other\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ResolveDSN() != "user:pass@tcp(somewhere:3306)/other" {
		t.Errorf("dsn = %q", cfg.ResolveDSN())
	}
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	path := writeConfig(t, "port: 8080\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing jwt_secret")
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, "jwt_secret: shhh\nnot_a_field: true\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := writeConfig(t, "jwt_secret: shhh\nport: 99999\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
