package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Notifier: NotifierConfig{
			PollInterval: 5 * time.Second,
			BatchSize:    20,
			MaxAttempts:  5,
			BackoffBase:  30 * time.Second,
			BackoffCap:   30 * time.Minute,
		},
		Dialog: DialogConfig{
			SessionTTL:      30 * time.Minute,
			JanitorInterval: time.Minute,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero batch size", func(c *Config) { c.Notifier.BatchSize = 0 }},
		{"zero max attempts", func(c *Config) { c.Notifier.MaxAttempts = 0 }},
		{"zero backoff base", func(c *Config) { c.Notifier.BackoffBase = 0 }},
		{"cap below base", func(c *Config) { c.Notifier.BackoffCap = time.Second }},
		{"zero session ttl", func(c *Config) { c.Dialog.SessionTTL = 0 }},
		{"zero janitor interval", func(c *Config) { c.Dialog.JanitorInterval = 0 }},
	}

	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestRequireBot(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.RequireBot(); err == nil {
		t.Error("empty token should be rejected")
	}
	cfg.Bot.Token = "123456:ABC-DEF"
	if err := cfg.RequireBot(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.RequireAuth(); err == nil {
		t.Error("short secret should be rejected")
	}
	cfg.Auth.JWTSecret = "0123456789abcdef0123456789abcdef"
	if err := cfg.RequireAuth(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
