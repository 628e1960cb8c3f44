package config

import (
	"time"

	"github.com/getmockd/magemock/pkg/auth"
)

// Default configuration values.
const (
	DefaultPort            = 8080
	DefaultReadTimeout     = 30
	DefaultWriteTimeout    = 30
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultPlatformVersion = "2.4"
)

// Config is the complete magemock configuration.
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Admin    AdminConfig    `json:"admin" yaml:"admin"`
	Platform PlatformConfig `json:"platform" yaml:"platform"`
	Seed     SeedConfig     `json:"seed" yaml:"seed"`
}

// ServerConfig holds the HTTP listener settings. Port 0 picks a free port.
// Timeouts are in seconds.
type ServerConfig struct {
	Port         int `json:"port" yaml:"port"`
	ReadTimeout  int `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout int `json:"writeTimeout" yaml:"writeTimeout"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// AdminConfig holds the credentials accepted by the token endpoint.
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	// TokenSecret signs issued tokens. A random secret is used when empty.
	TokenSecret string `json:"tokenSecret,omitempty" yaml:"tokenSecret,omitempty"`
	// TokenTTL is a duration string such as "4h".
	TokenTTL string `json:"tokenTtl,omitempty" yaml:"tokenTtl,omitempty"`
}

// PlatformConfig selects the platform behavior the mock imitates.
type PlatformConfig struct {
	Version string `json:"version" yaml:"version"`
}

// SeedConfig lists the fixture files loaded at startup. Paths may be globs
// and are resolved against the directory of the configuration file.
type SeedConfig struct {
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         DefaultPort,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Admin: AdminConfig{
			Username: auth.DefaultUsername,
			Password: auth.DefaultPassword,
			TokenTTL: auth.DefaultTTL.String(),
		},
		Platform: PlatformConfig{
			Version: DefaultPlatformVersion,
		},
	}
}

// Auth returns the token issuer settings. Validate must have accepted the
// configuration.
func (c *Config) Auth() auth.Config {
	cfg := auth.Config{
		Username: c.Admin.Username,
		Password: c.Admin.Password,
		Secret:   c.Admin.TokenSecret,
	}
	if c.Admin.TokenTTL != "" {
		cfg.TTL, _ = time.ParseDuration(c.Admin.TokenTTL)
	}
	return cfg
}

// ReadTimeout returns the HTTP read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeout) * time.Second
}

// WriteTimeout returns the HTTP write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeout) * time.Second
}
