// ABOUTME: Login command exchanging credentials for a persisted session
// ABOUTME: Rejects non-admin accounts without storing anything

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

	"github.com/tourbase/tourbase-admin/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the backend and persist the session",
	Long: `Sign in with admin credentials and persist the session token and profile.

Only accounts with the admin role may sign in; regular accounts are rejected
and nothing is stored.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout, loginEmail, loginPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

// runLogin executes the signin and returns an exit code
func runLogin(ctx context.Context, w io.Writer, email, password string) int {
	_, store, client := setup()

	resp, err := client.SignIn(ctx, email, password)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if resp.User.Role != session.RoleAdmin {
		fmt.Fprintln(w, "Error: only admins can access the console")
		return 3
	}

	user := &session.User{
		ID:       resp.User.ID,
		FullName: resp.User.FullName,
		Email:    resp.User.Email,
		Role:     resp.User.Role,
	}
	if err := store.Set(resp.Token, user); err != nil {
		fmt.Fprintf(w, "Error: could not save session: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"fullname": user.FullName,
			"email":    user.Email,
			"role":     user.Role,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Signed in as %s (%s)\n", user.FullName, user.Role)
	}
	return 0
}
