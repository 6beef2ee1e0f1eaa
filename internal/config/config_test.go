package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Host != "freechess.org" || cfg.Port != 5000 {
		t.Fatalf("default host/port: %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.Transport != "telnet" || cfg.Username != "guest" {
		t.Fatalf("default transport/user: %s %s", cfg.Transport, cfg.Username)
	}
	if cfg.Addr() != "freechess.org:5000" {
		t.Fatalf("addr: %s", cfg.Addr())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FICS_HOST", "example.org")
	t.Setenv("FICS_PORT", "5001")
	t.Setenv("FICS_TRANSPORT", "auto")
	t.Setenv("FICS_USER", "alice")
	t.Setenv("EVENT_BUFFER", "32")
	t.Setenv("DIAL_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != "example.org:5001" {
		t.Fatalf("addr: %s", cfg.Addr())
	}
	if cfg.Transport != "auto" || cfg.Username != "alice" {
		t.Fatalf("transport/user: %s %s", cfg.Transport, cfg.Username)
	}
	if cfg.EventBuffer != 32 || cfg.DialTimeout.Seconds() != 3 {
		t.Fatalf("buffer/timeout: %d %v", cfg.EventBuffer, cfg.DialTimeout)
	}
}

func TestInvalidValues(t *testing.T) {
	t.Setenv("FICS_PORT", "notaport")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad port")
	}
	t.Setenv("FICS_PORT", "5000")

	t.Setenv("FICS_TRANSPORT", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad transport")
	}
	t.Setenv("FICS_TRANSPORT", "ws")

	t.Setenv("FICS_WS_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for ws transport without url")
	}
}
