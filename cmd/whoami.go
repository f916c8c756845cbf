// ABOUTME: Whoami command printing the stored session profile
// ABOUTME: Reads only local state, never calls the backend

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runWhoami(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints the stored profile and returns an exit code
func runWhoami(w io.Writer) int {
	_, store, _ := setup()

	sess := store.Get()
	if sess.Empty() {
		fmt.Fprintln(w, "Not signed in. Run 'tourbase-admin login' first.")
		return 3
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(sess.User, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Signed in as %s <%s> (%s)\n", sess.User.FullName, sess.User.Email, sess.User.Role)
	}
	return 0
}
