package cmd

import (
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the list of global flags inherited by all commands",
	Long:  `Print the list of global command-line options (flags) that can be passed to any command.`,
	Run:   runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) {
	cmd.Print(`The following options can be passed to any command:

    --context='':
        The name of the context to use (overrides current-context)

    --debug=false:
        Enable debug diagnostic output

    --log-level='':
        Log level (debug, info, warn, error) - overrides config file

    -o, --output='':
        Output format (json, table, tsv, plain). Defaults to table on a
        terminal and json when piped

    -q, --quiet=false:
        Print only record ids, one per line

    --timeout=30s:
        Per-request timeout (e.g., 30s, 1m, 2m30s)

    --verbose=false:
        Enable verbose diagnostic output
`)
}
