// ABOUTME: Console command starting the interactive TUI
// ABOUTME: Shows the login screen first unless an admin session is stored

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tourbase/tourbase-admin/internal/tui"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive admin console",
	Long: `Start the interactive terminal console.

A persisted admin session resumes at the main menu; otherwise the console
opens on the login screen.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, store, client := setup()
		if err := tui.Run(client, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
