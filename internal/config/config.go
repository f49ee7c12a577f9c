// Package config loads runtime configuration for the portfolio server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Contact  ContactConfig  `mapstructure:"contact"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	StaticDir       string        `mapstructure:"static_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
}

// DatabaseConfig points at the SQLite file holding preferences.
// An empty Path, or Memory, keeps everything in memory.
type DatabaseConfig struct {
	Path   string `mapstructure:"path"`
	Memory bool   `mapstructure:"memory"`
}

// ThemeConfig configures the theme preference store.
type ThemeConfig struct {
	StorageKey string `mapstructure:"storage_key"`

	// PrefersColorScheme is the ambient signal consulted on cold start:
	// "dark", "light", or empty when the host reports nothing.
	PrefersColorScheme string `mapstructure:"prefers_color_scheme"`
}

// ContactConfig configures the contact form lifecycle and its transport.
type ContactConfig struct {
	Transport      string        `mapstructure:"transport"` // simulated or smtp
	SimulatedDelay time.Duration `mapstructure:"simulated_delay"`
	SuccessWindow  time.Duration `mapstructure:"success_window"`
	SubmitTimeout  time.Duration `mapstructure:"submit_timeout"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

// SMTPConfig holds mail relay credentials.
type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	To   string `mapstructure:"to"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Transport names.
const (
	TransportSimulated = "simulated"
	TransportSMTP      = "smtp"
)

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Ambient converts PrefersColorScheme into the cold-start signal.
func (t ThemeConfig) Ambient() (prefersDark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(t.PrefersColorScheme)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.static_dir", "./static")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.secure_cookies", false)

	v.SetDefault("database.path", "portfolio.db")
	v.SetDefault("database.memory", false)

	v.SetDefault("theme.storage_key", "theme-storage")
	v.SetDefault("theme.prefers_color_scheme", "")

	v.SetDefault("contact.transport", TransportSimulated)
	v.SetDefault("contact.simulated_delay", 2*time.Second)
	v.SetDefault("contact.success_window", 5*time.Second)
	v.SetDefault("contact.submit_timeout", 30*time.Second)
	v.SetDefault("contact.max_retries", 2)
	v.SetDefault("contact.retry_interval", 500*time.Millisecond)
	v.SetDefault("contact.session_ttl", 30*time.Minute)

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.pass", "")
	v.SetDefault("smtp.to", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// New returns a viper instance with defaults and environment bindings.
// Environment variables use the PORTFOLIO_ prefix; the deploy-time names
// PORT, GIN_MODE, SMTP_* and TO_EMAIL are honoured as well.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("portfolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("server.port", "PORTFOLIO_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.mode", "PORTFOLIO_SERVER_MODE", "GIN_MODE")
	_ = v.BindEnv("smtp.host", "PORTFOLIO_SMTP_HOST", "SMTP_HOST")
	_ = v.BindEnv("smtp.port", "PORTFOLIO_SMTP_PORT", "SMTP_PORT")
	_ = v.BindEnv("smtp.user", "PORTFOLIO_SMTP_USER", "SMTP_USER")
	_ = v.BindEnv("smtp.pass", "PORTFOLIO_SMTP_PASS", "SMTP_PASS")
	_ = v.BindEnv("smtp.to", "PORTFOLIO_SMTP_TO", "TO_EMAIL")

	return v
}

// Load reads the optional config file into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the rest of the program relies on.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server.mode %q", c.Server.Mode)
	}
	if c.Theme.StorageKey == "" {
		return errors.New("theme.storage_key is required")
	}
	switch c.Contact.Transport {
	case TransportSimulated:
	case TransportSMTP:
		if c.SMTP.User == "" || c.SMTP.Pass == "" {
			return errors.New("SMTP credentials not configured")
		}
		if c.SMTP.To == "" {
			return errors.New("smtp.to is required for the smtp transport")
		}
	default:
		return fmt.Errorf("unknown contact.transport %q", c.Contact.Transport)
	}
	if c.Contact.SuccessWindow <= 0 {
		return errors.New("contact.success_window must be positive")
	}
	if c.Contact.MaxRetries < 0 {
		return errors.New("contact.max_retries must not be negative")
	}
	return nil
}
