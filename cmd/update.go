package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/output"
)

var (
	updateOpts struct {
		title      string
		link       string
		tags       []string
		collection int64
		excerpt    string
	}

	updateCmd = &cobra.Command{
		Use:   "update <id>",
		Short: "Update a bookmark",
		Long:  `Change fields on an existing bookmark. Only the flags you pass are sent.`,
		Example: `  # Rename a bookmark
  drop update 123 --title "New title"

  # Replace its tags
  drop update 123 --tag go --tag http

  # Move it to another collection
  drop update 123 --collection 42`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVarP(&updateOpts.title, "title", "t", "", "new title")
	updateCmd.Flags().StringVar(&updateOpts.link, "link", "", "new url")
	updateCmd.Flags().StringArrayVar(&updateOpts.tags, "tag", nil,
		"replacement tag set (repeatable)")
	updateCmd.Flags().Int64VarP(&updateOpts.collection, "collection", "c", 0,
		"collection id to move the bookmark into")
	updateCmd.Flags().StringVar(&updateOpts.excerpt, "excerpt", "", "new excerpt")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseBookmarkID(args[0])
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if cmd.Flags().Changed("title") {
		fields["title"] = updateOpts.title
	}
	if cmd.Flags().Changed("link") {
		fields["link"] = updateOpts.link
	}
	if cmd.Flags().Changed("tag") {
		fields["tags"] = updateOpts.tags
	}
	if cmd.Flags().Changed("collection") {
		fields["collection"] = map[string]any{"$id": updateOpts.collection}
	}
	if cmd.Flags().Changed("excerpt") {
		fields["excerpt"] = updateOpts.excerpt
	}

	if len(fields) == 0 {
		return usageErrorf("nothing to update: pass at least one of --title, --link, --tag, --collection, --excerpt")
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

	var updated map[string]any
	err = withSpinner("Updating bookmark...", func(ctx context.Context) error {
		var updateErr error
		updated, updateErr = apiClient.UpdateBookmark(ctx, id, fields)
		return updateErr
	})
	if err != nil {
		return wrapNotConnectedError(fmt.Errorf("failed to update bookmark %d: %w", id, err))
	}

	if !opts.Quiet && opts.Format != output.FormatJSON {
		output.Success(fmt.Sprintf("Updated bookmark %d", id))
	}
	return renderRecords(updated, bookmarkColumns, opts)
}

func parseBookmarkID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, usageErrorf("invalid bookmark id %q: must be a positive integer", arg)
	}
	return id, nil
}
