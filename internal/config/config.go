package config

import "time"

// Config is the root application configuration shared by the bot, the
// admin API, and the notifier worker.
type Config struct {
	Bot      BotConfig      `yaml:"bot"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Dialog   DialogConfig   `yaml:"dialog"`
	Notifier NotifierConfig `yaml:"notifier"`
	Log      LogConfig      `yaml:"log"`
}

// BotConfig holds Telegram bot settings.
type BotConfig struct {
	Token       string `yaml:"token"        env:"BOT_TOKEN"`
	PollTimeout int    `yaml:"poll_timeout" env:"BOT_POLL_TIMEOUT" env-default:"30"`
	Debug       bool   `yaml:"debug"        env:"BOT_DEBUG"        env-default:"false"`
}

// ServerConfig holds admin API HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	LoginRateLimit  int           `yaml:"login_rate_limit" env:"SERVER_LOGIN_RATE_LIMIT" env-default:"20"`
	CORS            CORSConfig    `yaml:"cors"`
}

// CORSConfig holds cross-origin settings for the admin API.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds staff authentication settings for the admin API.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"intake-backend"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"8h"`
}

// DialogConfig holds conversation session settings.
type DialogConfig struct {
	SessionTTL      time.Duration `yaml:"session_ttl"      env:"DIALOG_SESSION_TTL"      env-default:"30m"`
	JanitorInterval time.Duration `yaml:"janitor_interval" env:"DIALOG_JANITOR_INTERVAL" env-default:"1m"`
}

// NotifierConfig holds outbox worker settings.
type NotifierConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" env:"NOTIFIER_POLL_INTERVAL" env-default:"5s"`
	BatchSize    int           `yaml:"batch_size"    env:"NOTIFIER_BATCH_SIZE"    env-default:"20"`
	MaxAttempts  int           `yaml:"max_attempts"  env:"NOTIFIER_MAX_ATTEMPTS"  env-default:"5"`
	BackoffBase  time.Duration `yaml:"backoff_base"  env:"NOTIFIER_BACKOFF_BASE"  env-default:"30s"`
	BackoffCap   time.Duration `yaml:"backoff_cap"   env:"NOTIFIER_BACKOFF_CAP"   env-default:"30m"`
	Retention    time.Duration `yaml:"retention"     env:"NOTIFIER_RETENTION"     env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
