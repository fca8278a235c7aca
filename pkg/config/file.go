package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ContextConfig represents configuration for a single context.
type ContextConfig struct {
	Server string `yaml:"server"`
	Token  string `yaml:"token,omitempty"`
}

// Config represents the entire configuration file.
type Config struct {
	Contexts       map[string]*ContextConfig `yaml:"contexts"`
	CurrentContext string                    `yaml:"current-context,omitempty"`
	LogLevel       string                    `yaml:"log-level,omitempty"`
	DefaultFormat  string                    `yaml:"default-format,omitempty"`
	Timeout        string                    `yaml:"timeout,omitempty"`
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	if envPath := os.Getenv("DROPCONFIG"); envPath != "" {
		return envPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "drop")
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig loads the configuration from the config file.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, return empty config
	info, statErr := os.Stat(configPath)
	if os.IsNotExist(statErr) {
		return &Config{
			Contexts: make(map[string]*ContextConfig),
		}, nil
	}
	if statErr != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, statErr)
	}

	// Tokens live in this file; warn when it is readable by others
	mode := info.Mode().Perm()
	if mode&0077 != 0 {
		fmt.Fprintf(os.Stderr, "Warning: Config file %s has permissions %o. Consider changing to 0600 for better security.\n",
			configPath, mode)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*ContextConfig)
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if mkdirErr := os.MkdirAll(configDir, 0700); mkdirErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkdirErr)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file holds API tokens
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetCurrentContext returns the current context configuration and name.
func GetCurrentContext() (*ContextConfig, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}

	if cfg.CurrentContext == "" {
		return nil, "", nil
	}

	ctxConfig, exists := cfg.Contexts[cfg.CurrentContext]
	if !exists {
		return nil, "", fmt.Errorf("current context %q not found", cfg.CurrentContext)
	}

	return ctxConfig, cfg.CurrentContext, nil
}

// SetContext adds or updates a context in the config.
func SetContext(name string, ctxConfig *ContextConfig, makeCurrent bool) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cfg.Contexts[name] = ctxConfig

	if makeCurrent || cfg.CurrentContext == "" {
		cfg.CurrentContext = name
	}

	return SaveConfig(cfg)
}

// DeleteContext removes a context from the config.
func DeleteContext(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, exists := cfg.Contexts[name]; !exists {
		return fmt.Errorf("context %q not found", name)
	}

	delete(cfg.Contexts, name)

	// If we deleted the current context, fall back to any remaining one
	if cfg.CurrentContext == name {
		cfg.CurrentContext = ""
		for ctxName := range cfg.Contexts {
			cfg.CurrentContext = ctxName
			break
		}
	}

	return SaveConfig(cfg)
}

// UseContext switches the current context.
func UseContext(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, exists := cfg.Contexts[name]; !exists {
		return fmt.Errorf("context %q not found", name)
	}

	cfg.CurrentContext = name
	return SaveConfig(cfg)
}
