package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/logger"
	"github.com/kazuma-desu/drop/pkg/output"
)

var collectionsCmd = &cobra.Command{
	Use:     "collections",
	Aliases: []string{"cols"},
	Short:   "Show the collection tree",
	Long: `Show all collections as a tree, with nested collections indented
under their parents and bookmark counts alongside each title.`,
	Example: `  # Show the tree
  drop collections

  # Flat table with ids
  drop collections -o table

  # Only collection ids
  drop collections -q`,
	Args: cobra.NoArgs,
	RunE: runCollections,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(_ *cobra.Command, _ []string) error {
	appCfg := loadAppConfig()

	opts, err := resolveOutputOptions(appCfg)
	if err != nil {
		return err
	}

	apiClient, err := newAPIClient(appCfg)
	if err != nil {
		return wrapNotConnectedError(err)
	}

	var roots, children []map[string]any
	err = withSpinner("Fetching collections...", func(ctx context.Context) error {
		var listErr error
		roots, children, listErr = apiClient.ListCollections(ctx)
		return listErr
	})
	if err != nil {
		return wrapNotConnectedError(fmt.Errorf("failed to list collections: %w", err))
	}

	logger.Log.Debugf("Fetched %d root and %d child collections", len(roots), len(children))

	forest := output.BuildTree(roots, children)
	rows := output.RenderTree(forest)

	if opts.Quiet {
		return renderRecords(rowRecords(rows), collectionColumns, opts)
	}

	switch opts.Format {
	case output.FormatJSON:
		return renderRecords(forest, collectionColumns, opts)
	case output.FormatPlain:
		return output.RenderTreeRows(os.Stdout, rows)
	default:
		return renderRecords(rowRecords(rows), collectionColumns, opts)
	}
}

// rowRecords flattens walked tree rows so the table, TSV, and quiet
// paths all see one deduplicated record per collection in tree order.
func rowRecords(rows []output.Row) []map[string]any {
	records := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		records = append(records, map[string]any{
			"_id":   row.ID,
			"title": row.Label,
			"count": row.Count,
		})
	}
	return records
}
