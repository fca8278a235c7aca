package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/models"
	"github.com/kazuma-desu/drop/pkg/output"
)

var (
	addOpts struct {
		title      string
		tags       []string
		collection int64
		excerpt    string
	}

	addCmd = &cobra.Command{
		Use:   "add <url>",
		Short: "Add a bookmark",
		Long:  `Save a URL as a new bookmark. The service fills in title and metadata when not provided.`,
		Example: `  # Add a bookmark
  drop add https://example.com/article

  # Add with a title and tags
  drop add https://example.com/article --title "Worth reading" --tag go --tag cli

  # Add into a collection
  drop add https://example.com/article --collection 42`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addOpts.title, "title", "t", "",
		"bookmark title (service resolves one when omitted)")
	addCmd.Flags().StringArrayVar(&addOpts.tags, "tag", nil,
		"tag to attach (repeatable)")
	addCmd.Flags().Int64VarP(&addOpts.collection, "collection", "c", 0,
		"collection id to file the bookmark under")
	addCmd.Flags().StringVar(&addOpts.excerpt, "excerpt", "",
		"short note or excerpt")
}

func runAdd(_ *cobra.Command, args []string) error {
	link := strings.TrimSpace(args[0])
	if link == "" {
		return usageErrorf("url must not be empty")
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return usageErrorf("invalid url %q: must start with http:// or https://", link)
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

	fields := map[string]any{"link": link}
	if addOpts.title != "" {
		fields["title"] = addOpts.title
	}
	if len(addOpts.tags) > 0 {
		fields["tags"] = addOpts.tags
	}
	if addOpts.collection != 0 {
		fields["collection"] = map[string]any{"$id": addOpts.collection}
	}
	if addOpts.excerpt != "" {
		fields["excerpt"] = addOpts.excerpt
	}

	var created map[string]any
	err = withSpinner("Saving bookmark...", func(ctx context.Context) error {
		var createErr error
		created, createErr = apiClient.CreateBookmark(ctx, fields)
		return createErr
	})
	if err != nil {
		return wrapNotConnectedError(fmt.Errorf("failed to add bookmark: %w", err))
	}

	if opts.Quiet || opts.Format == output.FormatJSON {
		return renderRecords(created, bookmarkColumns, opts)
	}

	if id, ok := created["_id"]; ok {
		output.Success(fmt.Sprintf("Added bookmark %s", models.FormatValue(id)))
	} else {
		output.Success("Added bookmark")
	}
	return renderRecords(created, bookmarkColumns, opts)
}
