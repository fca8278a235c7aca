package config

import (
	"fmt"
	"time"

	"github.com/kazuma-desu/drop/pkg/client"
)

// DefaultTimeout is the per-request timeout when neither the flag nor
// the config file sets one.
const DefaultTimeout = 30 * time.Second

// MinTimeout is the smallest accepted per-request timeout.
const MinTimeout = 1 * time.Second

// GetAPIConfig retrieves the service configuration from the current context.
func GetAPIConfig() (*client.Config, error) {
	return GetAPIConfigWithContext("")
}

// GetAPIConfigWithContext retrieves service configuration with optional
// context override. Priority: explicit context > current context.
func GetAPIConfigWithContext(contextName string) (*client.Config, error) {
	var server, token string

	if contextName != "" {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Contexts[contextName] == nil {
			return nil, fmt.Errorf("context %q not found in config - use 'drop login' to add it", contextName)
		}
		ctx := cfg.Contexts[contextName]
		server = ctx.Server
		token = ctx.Token
	} else {
		ctxConfig, _, err := GetCurrentContext()
		if err != nil {
			return nil, fmt.Errorf("failed to get current context: %w", err)
		}
		if ctxConfig == nil {
			return nil, fmt.Errorf("no current context set - use 'drop login' to configure a context or 'drop config use-context <name>'")
		}
		server = ctxConfig.Server
		token = ctxConfig.Token
	}

	if server == "" {
		return nil, fmt.Errorf("no server configured - use 'drop login' to add a context")
	}

	return &client.Config{
		Server: server,
		Token:  token,
	}, nil
}

// ParseTimeout validates a timeout string from the config file or
// `config set`.
func ParseTimeout(s string) (time.Duration, error) {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %v", parsed)
	}
	return parsed, nil
}

// ResolveTimeout resolves the per-request timeout once at startup.
// Priority: flag (when set) > config file > DefaultTimeout. Zero and
// negative values are a usage error; positive values below MinTimeout
// are raised to it.
func ResolveTimeout(flagValue time.Duration, flagChanged bool, cfg *Config) (time.Duration, error) {
	timeout := DefaultTimeout

	if cfg != nil && cfg.Timeout != "" {
		parsed, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q in config file: %w", cfg.Timeout, err)
		}
		timeout = parsed
	}

	if flagChanged {
		timeout = flagValue
	}

	if timeout <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %v", timeout)
	}
	if timeout < MinTimeout {
		timeout = MinTimeout
	}

	return timeout, nil
}
