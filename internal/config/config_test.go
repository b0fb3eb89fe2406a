package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "5000" {
		t.Errorf("Port: got %q want %q", cfg.Port, "5000")
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry: got %v want %v", cfg.JWTExpiry, 24*time.Hour)
	}
	if cfg.SuperAdminEmail != "rumanislam0429@gmail.com" {
		t.Errorf("SuperAdminEmail: got %q", cfg.SuperAdminEmail)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("SUPER_ADMIN_EMAIL", "root@x.com")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port: got %q want %q", cfg.Port, "9000")
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("JWTExpiry: got %v want %v", cfg.JWTExpiry, time.Hour)
	}
	if cfg.SuperAdminEmail != "root@x.com" {
		t.Errorf("SuperAdminEmail: got %q", cfg.SuperAdminEmail)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry: got %v want fallback %v", cfg.JWTExpiry, 24*time.Hour)
	}
}
