package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ValidationError is a single configuration problem.
type ValidationError struct {
	Path    string // Config path, e.g. "server.port"
	Message string
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidationResult collects every problem found in a Config.
type ValidationResult struct {
	Errors []ValidationError
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined error message.
func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return "invalid configuration:\n" + strings.Join(msgs, "\n")
}

// AddError adds a validation error.
func (r *ValidationResult) AddError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks the configuration. The returned error is a
// *ValidationResult listing every problem.
func (c *Config) Validate() error {
	result := &ValidationResult{}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		result.AddError("server.port", fmt.Sprintf("invalid port %d, must be 0-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		result.AddError("server.readTimeout", "must not be negative")
	}
	if c.Server.WriteTimeout < 0 {
		result.AddError("server.writeTimeout", "must not be negative")
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		result.AddError("log.level", fmt.Sprintf("unknown level %q", c.Log.Level))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		result.AddError("log.format", fmt.Sprintf("unknown format %q, expected text or json", c.Log.Format))
	}

	if c.Admin.Username == "" {
		result.AddError("admin.username", "required")
	}
	if c.Admin.Password == "" {
		result.AddError("admin.password", "required")
	}
	if c.Admin.TokenTTL != "" {
		ttl, err := time.ParseDuration(c.Admin.TokenTTL)
		if err != nil {
			result.AddError("admin.tokenTtl", fmt.Sprintf("invalid duration: %v", err))
		} else if ttl <= 0 {
			result.AddError("admin.tokenTtl", "must be positive")
		}
	}

	if c.Platform.Version == "" {
		result.AddError("platform.version", "required")
	}

	for i, p := range c.Seed.Paths {
		if strings.TrimSpace(p) == "" {
			result.AddError(fmt.Sprintf("seed.paths[%d]", i), "must not be empty")
		}
	}

	if result.IsValid() {
		return nil
	}
	return result
}
