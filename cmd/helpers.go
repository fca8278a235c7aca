package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/huh/spinner"

	"github.com/kazuma-desu/drop/pkg/client"
	"github.com/kazuma-desu/drop/pkg/config"
	"github.com/kazuma-desu/drop/pkg/logger"
	"github.com/kazuma-desu/drop/pkg/output"
)

// bookmarkColumns is the projection used by every bookmark listing.
var bookmarkColumns = []output.Column{
	{Key: "title", Header: "TITLE", Width: 40, Prominent: true},
	{Key: "link", Header: "LINK", Width: 60, Prominent: true},
	{Key: "excerpt", Header: "EXCERPT"},
	{Key: "tags", Header: "TAGS", Width: 30},
	{Key: "type", Header: "TYPE", Width: 10},
	{Key: "created", Header: "CREATED", Width: 20},
	{Key: "_id", Header: "ID", Width: 10},
}

var collectionColumns = []output.Column{
	{Key: "_id", Header: "ID", Width: 10},
	{Key: "title", Header: "TITLE", Width: 50, Prominent: true},
	{Key: "count", Header: "COUNT", Width: 10},
}

func loadAppConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Debugf("Could not load config: %v", err)
		return &config.Config{}
	}
	return cfg
}

func resolveOutputOptions(appCfg *config.Config) (output.Options, error) {
	format, err := output.ResolveFormat(outputFormat, appCfg.DefaultFormat)
	if err != nil {
		return output.Options{}, &usageError{err: err}
	}
	return output.Options{
		Format:  format,
		Quiet:   quietOutput,
		Verbose: verboseOutput,
		Debug:   debugOutput,
	}, nil
}

// newAPIClientFunc is swapped out in tests to return a mock.
var newAPIClientFunc = func(appCfg *config.Config) (client.API, error) {
	cfg, err := config.GetAPIConfigWithContext(contextName)
	if err != nil {
		return nil, err
	}

	timeout, err := config.ResolveTimeout(flagTimeout,
		rootCmd.PersistentFlags().Changed("timeout"), appCfg)
	if err != nil {
		return nil, &usageError{err: err}
	}
	cfg.Timeout = timeout

	return client.NewClient(cfg)
}

func newAPIClient(appCfg *config.Config) (client.API, error) {
	return newAPIClientFunc(appCfg)
}

// withSpinner runs fn behind a spinner when stdout is a terminal.
// Quiet mode and non-TTY output skip the spinner so piped output
// stays clean.
func withSpinner(title string, fn func(ctx context.Context) error) error {
	if quietOutput || !output.IsTerminal(os.Stdout) {
		return fn(context.Background())
	}

	var fnErr error
	err := spinner.New().
		Title(title).
		ActionWithErr(func(ctx context.Context) error {
			fnErr = fn(ctx)
			return nil
		}).
		Run()
	if err != nil {
		return err
	}
	return fnErr
}

func renderRecords(data any, columns []output.Column, opts output.Options) error {
	return output.Render(os.Stdout, data, columns, opts)
}
