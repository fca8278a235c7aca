package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/models"
	"github.com/kazuma-desu/drop/pkg/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection and account status",
	Long: `Display the active context, the server it points at, and the
account the stored token belongs to.`,
	Example: `  # Show status
  drop status

  # Output as JSON
  drop status -o json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	appCfg := loadAppConfig()

	opts, err := resolveOutputOptions(appCfg)
	if err != nil {
		return err
	}

	ctxName := contextName
	if ctxName == "" {
		ctxName = appCfg.CurrentContext
	}
	ctxConfig, ok := appCfg.Contexts[ctxName]
	if !ok {
		return fmt.Errorf("no context configured (run 'drop login')")
	}

	apiClient, err := newAPIClient(appCfg)
	if err != nil {
		return wrapNotConnectedError(err)
	}

	var user map[string]any
	err = withSpinner("Checking connection...", func(ctx context.Context) error {
		var userErr error
		user, userErr = apiClient.User(ctx)
		return userErr
	})

	data := map[string]any{
		"context":   ctxName,
		"server":    ctxConfig.Server,
		"connected": err == nil,
	}
	if err == nil {
		if email, found := user["email"]; found {
			data["email"] = email
		}
		if name, found := user["fullName"]; found {
			data["user"] = name
		}
	} else {
		data["error"] = wrapNotConnectedError(err).Error()
	}

	if opts.Format == output.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(data); encErr != nil {
			return encErr
		}
	} else {
		printStatusText(ctxName, ctxConfig.Server, user, err)
	}

	if err != nil {
		return wrapNotConnectedError(err)
	}
	return nil
}

func printStatusText(ctxName, server string, user map[string]any, connErr error) {
	fmt.Printf("Context: %s\n", ctxName)
	fmt.Printf("Server:  %s\n", server)

	if connErr != nil {
		fmt.Println("Status:  DISCONNECTED")
		return
	}

	fmt.Println("Status:  CONNECTED")
	if email, ok := user["email"]; ok {
		fmt.Printf("Account: %s\n", models.FormatValue(email))
	}
	if name, ok := user["fullName"]; ok {
		fmt.Printf("Name:    %s\n", models.FormatValue(name))
	}
}
