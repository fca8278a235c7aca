package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/config"
	"github.com/kazuma-desu/drop/pkg/logger"
)

var (
	logLevel      string
	contextName   string
	outputFormat  string
	quietOutput   bool
	verboseOutput bool
	debugOutput   bool
	flagTimeout   time.Duration

	rootCmd = &cobra.Command{
		Use:   "drop",
		Short: "Bookmark Terminal Utility",
		Long: `drop is a CLI client for a bookmark-management service.

It lists, adds, updates, and removes bookmarks, shows the collection
tree, and manages connection contexts for one or more accounts.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error) - overrides config file")
	pf.StringVar(&contextName, "context", "",
		"context to use for the bookmark service (overrides current context)")
	pf.StringVarP(&outputFormat, "output", "o", "",
		"output format (json, table, tsv, plain)")
	pf.BoolVarP(&quietOutput, "quiet", "q", false,
		"print only record ids, one per line")
	pf.BoolVar(&verboseOutput, "verbose", false,
		"verbose diagnostic output")
	pf.BoolVar(&debugOutput, "debug", false,
		"debug diagnostic output")
	pf.DurationVar(&flagTimeout, "timeout", config.DefaultTimeout,
		"per-request timeout (e.g. 30s, 1m)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func configureLogging() {
	effectiveLogLevel := "warn"

	cfg, err := config.LoadConfig()
	if err == nil && cfg.LogLevel != "" {
		effectiveLogLevel = cfg.LogLevel
	}

	if debugOutput {
		effectiveLogLevel = "debug"
	} else if verboseOutput {
		effectiveLogLevel = "info"
	}

	if logLevel != "" {
		effectiveLogLevel = logLevel
	}

	logger.SetLevel(effectiveLogLevel)
}
