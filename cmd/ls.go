package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/logger"
	"github.com/kazuma-desu/drop/pkg/models"
	"github.com/kazuma-desu/drop/pkg/output"
)

var (
	lsOpts struct {
		collection int64
		search     string
	}

	lsCmd = &cobra.Command{
		Use:   "ls [collection-id]",
		Short: "List bookmarks",
		Long:  `List bookmarks, optionally scoped to a single collection.`,
		Example: `  # List all bookmarks
  drop ls

  # List bookmarks in collection 42
  drop ls 42
  drop ls --collection 42

  # Only print ids, one per line
  drop ls -q

  # Machine-readable output
  drop ls -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLs,
	}
)

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().Int64VarP(&lsOpts.collection, "collection", "c", 0,
		"collection id to list (0 = all bookmarks)")
	lsCmd.Flags().StringVar(&lsOpts.search, "search", "",
		"filter bookmarks by a search phrase")
}

func runLs(_ *cobra.Command, args []string) error {
	collection := lsOpts.collection
	if len(args) == 1 {
		parsed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || parsed < 0 {
			return usageErrorf("invalid collection id %q: must be a non-negative integer", args[0])
		}
		collection = parsed
	}

	appCfg := loadAppConfig()

	opts, err := resolveOutputOptions(appCfg)
	if err != nil {
		return err
	}

	apiClient, err := newAPIClient(appCfg)
	if err != nil {
		return wrapNotConnectedError(err)
	}

	var records []map[string]any
	err = withSpinner("Fetching bookmarks...", func(ctx context.Context) error {
		var listErr error
		records, listErr = apiClient.ListBookmarks(ctx, collection)
		return listErr
	})
	if err != nil {
		return wrapNotConnectedError(fmt.Errorf("failed to list bookmarks: %w", err))
	}

	if lsOpts.search != "" {
		records = filterRecords(records, lsOpts.search)
	}

	logger.Log.Debugf("Fetched %d bookmarks", len(records))

	return renderRecords(records, bookmarkColumns, opts)
}

var searchFields = []string{"title", "link", "excerpt", "tags", "domain"}

// filterRecords keeps bookmarks whose searchable fields contain the
// phrase, case-insensitively.
func filterRecords(records []map[string]any, phrase string) []map[string]any {
	phrase = strings.ToLower(phrase)

	matched := make([]map[string]any, 0, len(records))
	for _, record := range records {
		for _, field := range searchFields {
			value, ok := output.Resolve(record, field)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(models.FormatValue(value)), phrase) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}
