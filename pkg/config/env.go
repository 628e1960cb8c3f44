package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvPort            = "MAGEMOCK_PORT"
	EnvReadTimeout     = "MAGEMOCK_READ_TIMEOUT"
	EnvWriteTimeout    = "MAGEMOCK_WRITE_TIMEOUT"
	EnvLogLevel        = "MAGEMOCK_LOG_LEVEL"
	EnvLogFormat       = "MAGEMOCK_LOG_FORMAT"
	EnvAdminUsername   = "MAGEMOCK_ADMIN_USERNAME"
	EnvAdminPassword   = "MAGEMOCK_ADMIN_PASSWORD"
	EnvTokenSecret     = "MAGEMOCK_TOKEN_SECRET"
	EnvTokenTTL        = "MAGEMOCK_TOKEN_TTL"
	EnvPlatformVersion = "MAGEMOCK_PLATFORM_VERSION"
	EnvSeed            = "MAGEMOCK_SEED"
)

// ApplyEnv overrides cfg with the MAGEMOCK_* variables that are set.
// Numeric variables that do not parse are ignored.
func ApplyEnv(cfg *Config) {
	setInt(EnvPort, &cfg.Server.Port)
	setInt(EnvReadTimeout, &cfg.Server.ReadTimeout)
	setInt(EnvWriteTimeout, &cfg.Server.WriteTimeout)
	setString(EnvLogLevel, &cfg.Log.Level)
	setString(EnvLogFormat, &cfg.Log.Format)
	setString(EnvAdminUsername, &cfg.Admin.Username)
	setString(EnvAdminPassword, &cfg.Admin.Password)
	setString(EnvTokenSecret, &cfg.Admin.TokenSecret)
	setString(EnvTokenTTL, &cfg.Admin.TokenTTL)
	setString(EnvPlatformVersion, &cfg.Platform.Version)

	// MAGEMOCK_SEED is a comma separated list of paths or globs.
	if v := os.Getenv(EnvSeed); v != "" {
		var paths []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		cfg.Seed.Paths = paths
	}
}

func setString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func setInt(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
