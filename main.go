// ABOUTME: Entry point for tourbase-admin CLI
// ABOUTME: Admin console for the Tourbase booking platform backend

package main

import (
	"fmt"
	"os"

	"github.com/tourbase/tourbase-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
