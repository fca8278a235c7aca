package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/config"
	"github.com/kazuma-desu/drop/pkg/output"
)

const errFailedToLoadConfiguration = "failed to load configuration: %w"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage drop configuration",
	Long:  `Manage contexts and settings.`,
}

var getContextsCmd = &cobra.Command{
	Use:   "get-contexts",
	Short: "List all available contexts",
	RunE:  runGetContexts,
}

var currentContextCmd = &cobra.Command{
	Use:   "current-context",
	Short: "Display current active context",
	RunE:  runCurrentContext,
}

var useContextCmd = &cobra.Command{
	Use:               "use-context <context-name>",
	Short:             "Switch to a different context",
	Args:              cobra.ExactArgs(1),
	RunE:              runUseContext,
	ValidArgsFunction: CompleteContextNamesForArg,
}

var deleteContextCmd = &cobra.Command{
	Use:               "delete-context <context-name>",
	Short:             "Delete a context",
	Args:              cobra.ExactArgs(1),
	RunE:              runDeleteContext,
	ValidArgsFunction: CompleteContextNamesForArg,
}

var viewConfigCmd = &cobra.Command{
	Use:   "view",
	Short: "View current configuration",
	RunE:  runViewConfig,
}

var setConfigCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Keys: log-level, default-format, timeout`,
	Example: `  drop config set log-level debug
  drop config set default-format json
  drop config set timeout 1m`,
	Args: cobra.ExactArgs(2),
	RunE: runSetConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(getContextsCmd)
	configCmd.AddCommand(currentContextCmd)
	configCmd.AddCommand(useContextCmd)
	configCmd.AddCommand(deleteContextCmd)
	configCmd.AddCommand(setConfigCmd)
	configCmd.AddCommand(viewConfigCmd)
}

func runGetContexts(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	if len(cfg.Contexts) == 0 {
		output.Info("No contexts found. Use 'drop login <context-name>' to create one.")
		return nil
	}

	names := make([]string, 0, len(cfg.Contexts))
	for name := range cfg.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		marker := "  "
		if name == cfg.CurrentContext {
			marker = "* "
		}
		fmt.Printf("%s%s\t%s\n", marker, name, cfg.Contexts[name].Server)
	}

	return nil
}

func runCurrentContext(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	if cfg.CurrentContext == "" {
		output.Info("No current context set. Use 'drop login' or 'drop config use-context <context-name>'.")
		return nil
	}

	fmt.Print(cfg.CurrentContext)
	return nil
}

func runUseContext(_ *cobra.Command, args []string) error {
	ctxName := args[0]

	if err := config.UseContext(ctxName); err != nil {
		return fmt.Errorf("failed to switch context: %w", err)
	}

	output.Success(fmt.Sprintf("Switched to context '%s'", ctxName))
	return nil
}

func runDeleteContext(_ *cobra.Command, args []string) error {
	ctxName := args[0]

	if err := config.DeleteContext(ctxName); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}

	output.Success(fmt.Sprintf("Context '%s' deleted", ctxName))
	return nil
}

func runSetConfig(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	switch key {
	case "log-level":
		validLevels := []string{"debug", "info", "warn", "error"}
		if !slices.Contains(validLevels, value) {
			return fmt.Errorf("invalid log level %s, valid: debug, info, warn, error", value)
		}
		cfg.LogLevel = value
	case "default-format":
		if _, err := output.ParseFormat(value); err != nil {
			return err
		}
		cfg.DefaultFormat = value
	case "timeout":
		if _, err := config.ParseTimeout(value); err != nil {
			return err
		}
		cfg.Timeout = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	output.Success(fmt.Sprintf("Configuration updated: %s = %s", key, value))
	return nil
}

func runViewConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	view := map[string]any{
		"currentContext": cfg.CurrentContext,
		"logLevel":       cfg.LogLevel,
		"defaultFormat":  cfg.DefaultFormat,
		"timeout":        cfg.Timeout,
	}
	contexts := make(map[string]any, len(cfg.Contexts))
	for name, ctx := range cfg.Contexts {
		// Tokens stay out of the view output.
		contexts[name] = map[string]any{"server": ctx.Server}
	}
	view["contexts"] = contexts

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
