package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Process-specific requirements (bot token, JWT secret) are checked by the
// entry points that actually need them, so one shared config file can serve
// all binaries.
func (c *Config) Validate() error {
	if c.Notifier.BatchSize <= 0 {
		return fmt.Errorf("notifier.batch_size must be > 0 (got %d)", c.Notifier.BatchSize)
	}
	if c.Notifier.MaxAttempts <= 0 {
		return fmt.Errorf("notifier.max_attempts must be > 0 (got %d)", c.Notifier.MaxAttempts)
	}
	if c.Notifier.BackoffBase <= 0 {
		return fmt.Errorf("notifier.backoff_base must be > 0 (got %v)", c.Notifier.BackoffBase)
	}
	if c.Notifier.BackoffCap < c.Notifier.BackoffBase {
		return fmt.Errorf("notifier.backoff_cap must be >= backoff_base")
	}
	if c.Dialog.SessionTTL <= 0 {
		return fmt.Errorf("dialog.session_ttl must be > 0 (got %v)", c.Dialog.SessionTTL)
	}
	if c.Dialog.JanitorInterval <= 0 {
		return fmt.Errorf("dialog.janitor_interval must be > 0 (got %v)", c.Dialog.JanitorInterval)
	}
	return nil
}

// RequireBot checks the settings the bot process cannot start without.
func (c *Config) RequireBot() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("bot.token is required (BOT_TOKEN)")
	}
	return nil
}

// RequireAuth checks the settings the admin API cannot start without.
func (c *Config) RequireAuth() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	return nil
}
