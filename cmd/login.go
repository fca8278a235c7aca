package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kazuma-desu/drop/pkg/client"
	"github.com/kazuma-desu/drop/pkg/config"
	"github.com/kazuma-desu/drop/pkg/models"
	"github.com/kazuma-desu/drop/pkg/output"
)

var loginCmd = &cobra.Command{
	Use:   "login [context-name]",
	Short: "Save bookmark service credentials",
	Long: `Save server and API token for convenient reuse.

You can keep multiple contexts (e.g. personal, work) and switch
between them with 'drop config use-context'.

Examples:
  # Interactive login into the default context
  drop login

  # Non-interactive login into a named context
  drop login work --server https://api.bookmarks.example --token $TOKEN

Security Note:
  Tokens are stored in plain text in ~/.config/drop/config.yaml.
  File permissions are restricted to 0600 automatically.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLogin,
}

var (
	loginServer string
	loginToken  string
	loginNoTest bool
)

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginServer, "server", "", "Service base URL")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "API token")
	loginCmd.Flags().BoolVar(&loginNoTest, "no-test", false, "Skip connection test")
}

func runLogin(_ *cobra.Command, args []string) {
	ctxName := "default"
	if len(args) == 1 {
		ctxName = args[0]
	}

	server := strings.TrimSpace(loginServer)
	token := strings.TrimSpace(loginToken)

	if server == "" || token == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Server URL").
					Placeholder("https://api.bookmarks.example").
					Value(&server).
					Validate(validateServerURL),
				huh.NewInput().
					Title("API token").
					EchoMode(huh.EchoModePassword).
					Value(&token).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("token is required")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			log.Fatal("Login cancelled", "error", err)
		}
		server = strings.TrimSpace(server)
		token = strings.TrimSpace(token)
	}

	if err := validateServerURL(server); err != nil {
		log.Fatal("Invalid server URL", "error", err)
	}

	if !loginNoTest {
		if !testConnection(server, token) {
			log.Fatal("Connection test failed; rerun with --no-test to save anyway")
		}
	}

	ctxConfig := &config.ContextConfig{
		Server: server,
		Token:  token,
	}

	if err := config.SetContext(ctxName, ctxConfig, true); err != nil {
		log.Fatal("Failed to save configuration", "error", err)
	}

	configPath, _ := config.GetConfigPath()
	output.Success(fmt.Sprintf("Configuration saved to %s", configPath))
	output.Success(fmt.Sprintf("Context '%s' is now active", ctxName))
}

func validateServerURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("server URL is required")
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://")
	}
	return nil
}

func testConnection(server, token string) bool {
	apiClient, err := client.NewClient(&client.Config{
		Server:  server,
		Token:   token,
		Timeout: config.DefaultTimeout,
	})
	if err != nil {
		output.Error(fmt.Sprintf("Failed to create client: %s", err))
		return false
	}

	var user map[string]any
	err = withSpinner("Testing connection...", func(ctx context.Context) error {
		var userErr error
		user, userErr = apiClient.User(ctx)
		return userErr
	})
	if err != nil {
		output.Error(fmt.Sprintf("Connection failed: %s", err))
		return false
	}

	if email, ok := user["email"]; ok {
		output.Success(fmt.Sprintf("Connected as %s", models.FormatValue(email)))
	} else {
		output.Success("Connected successfully")
	}
	return true
}
