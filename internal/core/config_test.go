package core

import "testing"

func TestConfig_KeyStoreHoldsSQLiteSettings(t *testing.T) {
	cfg := &Config{}
	cfg.KeyStore.Driver = "sqlite"
	cfg.KeyStore.DSN = "cssvault.db"

	if cfg.KeyStore.Driver != "sqlite" {
		t.Fatalf("KeyStore.Driver = %q, want sqlite", cfg.KeyStore.Driver)
	}
	if cfg.KeyStore.DSN != "cssvault.db" {
		t.Fatalf("KeyStore.DSN = %q, want cssvault.db", cfg.KeyStore.DSN)
	}
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = "not-a-level"

	if _, err := NewLogger(cfg); err == nil {
		t.Fatal("NewLogger() error = nil, want an error for an invalid log level")
	}
}

func TestNewLogger_BuildsAtValidLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = "info"

	logger, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatal("NewLogger() returned a nil logger")
	}
}
