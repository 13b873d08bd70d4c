package config

import (
	"os"
	"strings"
	"testing"
)

func productionConfig() *Config {
	return &Config{
		Environment:          EnvProduction,
		LogLevel:             "info",
		SessionAuthKey:       strings.Repeat("a", 32),
		SessionEncryptionKey: strings.Repeat("b", 32),
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid production config", func(*Config) {}, ""},
		{"short auth key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"short encryption key", func(c *Config) { c.SessionEncryptionKey = "short" }, "SESSION_ENCRYPTION_KEY"},
		{"20-byte encryption key", func(c *Config) { c.SessionEncryptionKey = strings.Repeat("b", 20) }, "SESSION_ENCRYPTION_KEY"},
		{"40-byte encryption key", func(c *Config) { c.SessionEncryptionKey = strings.Repeat("b", 40) }, "SESSION_ENCRYPTION_KEY"},
		{"16-byte encryption key", func(c *Config) { c.SessionEncryptionKey = strings.Repeat("b", 16) }, ""},
		{"24-byte encryption key", func(c *Config) { c.SessionEncryptionKey = strings.Repeat("b", 24) }, ""},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"dev login enabled", func(c *Config) { c.AllowDevLogin = true }, "ALLOW_DEV_LOGIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForProduction_NonProductionNoop(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug", AllowDevLogin: true}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil for development, got %v", err)
	}
}

func TestValidateForProduction_ReportsAllProblems(t *testing.T) {
	cfg := &Config{Environment: EnvProduction, LogLevel: "debug", AllowDevLogin: true}
	err := ValidateForProduction(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"SESSION_AUTH_KEY", "SESSION_ENCRYPTION_KEY", "LOG_LEVEL", "ALLOW_DEV_LOGIN"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %s in %q", want, err.Error())
		}
	}
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoad_DefaultSessionKeysAreUsable(t *testing.T) {
	unsetEnv(t, "SESSION_AUTH_KEY")
	unsetEnv(t, "SESSION_ENCRYPTION_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.SessionAuthKey) < 32 {
		t.Errorf("default SESSION_AUTH_KEY is %d bytes, want at least 32", len(cfg.SessionAuthKey))
	}
	if !validAESKeyLen(len(cfg.SessionEncryptionKey)) {
		t.Errorf("default SESSION_ENCRYPTION_KEY is %d bytes, want 16, 24 or 32", len(cfg.SessionEncryptionKey))
	}
}
