// ABOUTME: Dashboard command printing platform summary counts
// ABOUTME: Fetches destination and account summaries concurrently

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tourbase/tourbase-admin/internal/api"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show platform summary counts",
	Long:  `Show the destination and user account summaries the console dashboard displays.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runDashboard(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// runDashboard fetches both summaries and returns an exit code
func runDashboard(ctx context.Context, w io.Writer) int {
	_, store, client := setup()

	if store.Get().Empty() {
		fmt.Fprintln(w, "Not signed in. Run 'tourbase-admin login' first.")
		return 3
	}

	type destResult struct {
		counts *api.DestinationCounts
		err    error
	}
	type userResult struct {
		counts *api.UserCounts
		err    error
	}

	destCh := make(chan destResult, 1)
	userCh := make(chan userResult, 1)
	go func() {
		counts, err := client.DestinationCounts(ctx)
		destCh <- destResult{counts, err}
	}()
	go func() {
		counts, err := client.UserCounts(ctx)
		userCh <- userResult{counts, err}
	}()

	dest := <-destCh
	users := <-userCh
	if dest.err != nil {
		fmt.Fprintf(w, "Error: %v\n", dest.err)
		return 2
	}
	if users.err != nil {
		fmt.Fprintf(w, "Error: %v\n", users.err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatDashboardJSON(dest.counts, users.counts))
	} else {
		fmt.Fprintln(w, formatDashboardHuman(dest.counts, users.counts))
	}
	return 0
}

// formatDashboardHuman formats the summaries for human readability
func formatDashboardHuman(dest *api.DestinationCounts, users *api.UserCounts) string {
	return fmt.Sprintf(`Destinations:  %d (%d domestic, %d international)
Users:         %d (%d regular, %d admin)`,
		dest.Total, dest.Domestic, dest.International,
		users.Total, users.Regular, users.Admin)
}

// formatDashboardJSON formats the summaries as JSON
func formatDashboardJSON(dest *api.DestinationCounts, users *api.UserCounts) string {
	output := map[string]any{
		"destinations": dest,
		"users":        users,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
