// ABOUTME: Logout command wiping the persisted session
// ABOUTME: Idempotent, signing out twice is not an error

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and wipe the persisted session",
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runLogout(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the session and returns an exit code
func runLogout(w io.Writer) int {
	_, store, _ := setup()
	if err := store.Clear(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, "Signed out")
	return 0
}
