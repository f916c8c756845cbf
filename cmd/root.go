// ABOUTME: Root command for the tourbase-admin CLI
// ABOUTME: Handles global flags and shared wiring for client and session store

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/config"
	"github.com/tourbase/tourbase-admin/internal/logging"
	"github.com/tourbase/tourbase-admin/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "tourbase-admin",
	Short: "Admin console for the Tourbase booking platform",
	Long: `tourbase-admin is the administrator's console for the Tourbase booking platform.

It manages destinations, packages, tours, itineraries, activities, places,
foods, and user accounts against the platform backend. Run without a
subcommand hint: "tourbase-admin console" starts the interactive TUI.

Environment Variables:
  TOURBASE_API_URL       Backend API URL (default: http://localhost:5000)
  TOURBASE_CONFIG_DIR    Session and log directory (default: ~/.config/tourbase)
  TOURBASE_HTTP_TIMEOUT  Request timeout, duration or seconds (default: 30s)`,
}

// Execute runs the root command
func Execute() error {
	defer logging.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides TOURBASE_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// setup loads configuration and builds the session store and API client every
// command shares. The persisted session is loaded before the client is built
// so requests carry the stored token.
func setup() (*config.Config, *session.Store, *api.Client) {
	cfg := config.Load(apiURL)
	logging.Init(cfg.ConfigDir)

	store := session.NewStore(cfg.ConfigDir)
	if err := store.Load(); err != nil {
		logging.Error("load session", err)
	}

	client := api.New(cfg.APIURL, store)
	client.SetTimeout(cfg.HTTPTimeout)
	return cfg, store, client
}
