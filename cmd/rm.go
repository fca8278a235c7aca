package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/output"
)

var (
	rmOpts struct {
		yes bool
	}

	rmCmd = &cobra.Command{
		Use:   "rm <id> [id...]",
		Short: "Remove bookmarks",
		Long:  `Move one or more bookmarks to the service trash.`,
		Example: `  # Remove a bookmark (asks for confirmation)
  drop rm 123

  # Remove several without confirmation
  drop rm 123 456 789 --yes`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRm,
	}
)

func init() {
	rootCmd.AddCommand(rmCmd)

	rmCmd.Flags().BoolVarP(&rmOpts.yes, "yes", "y", false,
		"skip confirmation prompt")
}

func runRm(_ *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseBookmarkID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	if !rmOpts.yes && !quietOutput {
		fmt.Fprintf(os.Stderr, "Remove %d bookmark(s)? (y/N): ", len(ids))
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			output.Warning("Aborted")
			return nil
		}
	}

	appCfg := loadAppConfig()

	apiClient, err := newAPIClient(appCfg)
	if err != nil {
		return wrapNotConnectedError(err)
	}

	for _, id := range ids {
		err = withSpinner(fmt.Sprintf("Removing bookmark %d...", id), func(ctx context.Context) error {
			return apiClient.DeleteBookmark(ctx, id)
		})
		if err != nil {
			return wrapNotConnectedError(fmt.Errorf("failed to remove bookmark %d: %w", id, err))
		}
		if quietOutput {
			fmt.Println(id)
		} else {
			output.Success(fmt.Sprintf("Removed bookmark %d", id))
		}
	}

	return nil
}
