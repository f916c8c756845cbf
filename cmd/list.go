// ABOUTME: List command printing any resource collection
// ABOUTME: Supports the same scoping filters the console screens offer

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tourbase/tourbase-admin/internal/api"
)

var (
	listDType       string
	listDestination int
	listPackage     int
	listTour        int
)

var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List a resource collection",
	Long: `List one of the platform's resource collections.

Resources: destinations, packages, tours, itineraries, activities, places,
foods, users. Listing users requires a signed-in session.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"destinations", "packages", "tours", "itineraries", "activities", "places", "foods", "users"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runList(ctx, os.Stdout, args[0]); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listDType, "dtype", "", "Scope destinations by type (domestic or international)")
	listCmd.Flags().IntVar(&listDestination, "destination", 0, "Scope by destination id")
	listCmd.Flags().IntVar(&listPackage, "package", 0, "Scope tours by package id")
	listCmd.Flags().IntVar(&listTour, "tour", 0, "Scope itineraries by tour id")
	rootCmd.AddCommand(listCmd)
}

// runList fetches the named collection and returns an exit code
func runList(ctx context.Context, w io.Writer, resource string) int {
	_, store, client := setup()

	var rows []string
	var payload any
	var err error

	switch strings.ToLower(resource) {
	case "destinations":
		var items []api.Destination
		items, err = client.ListDestinations(ctx, listDType)
		payload = items
		for _, d := range items {
			rows = append(rows, fmt.Sprintf("%-5d %-14s %s", d.DID, d.DType, d.Name))
		}
	case "packages":
		var items []api.Package
		items, err = client.ListPackages(ctx, listDestination)
		payload = items
		for _, p := range items {
			rows = append(rows, fmt.Sprintf("%-5d %-10.2f %s", p.ID, p.Price, p.Name))
		}
	case "tours":
		var items []api.Tour
		items, err = client.ListTours(ctx, listPackage)
		payload = items
		for _, t := range items {
			rows = append(rows, fmt.Sprintf("%-5d %2d days  %s", t.TID, t.TDay, t.TName))
		}
	case "itineraries":
		var items []api.Itinerary
		items, err = client.ListItineraries(ctx, listTour)
		payload = items
		for _, i := range items {
			rows = append(rows, fmt.Sprintf("%-5d tour %-4d %s", i.IID, i.TID, i.IName))
		}
	case "activities":
		var items []api.Activity
		items, err = client.ListActivities(ctx, listDestination)
		payload = items
		for _, a := range items {
			rows = append(rows, fmt.Sprintf("%-5d dest %-4d %s", a.AID, a.DID, firstLine(a.ADetail)))
		}
	case "places":
		var items []api.Place
		items, err = client.ListPlaces(ctx, listDestination)
		payload = items
		for _, p := range items {
			rows = append(rows, fmt.Sprintf("%-5d dest %-4d %s", p.PID, p.DID, firstLine(p.PDetail)))
		}
	case "foods":
		var items []api.Food
		items, err = client.ListFoods(ctx, listDestination)
		payload = items
		for _, f := range items {
			rows = append(rows, fmt.Sprintf("%-5d dest %-4d %s", f.FID, f.DID, firstLine(f.FDetail)))
		}
	case "users":
		if store.Get().Empty() {
			fmt.Fprintln(w, "Not signed in. Run 'tourbase-admin login' first.")
			return 3
		}
		var items []api.User
		items, err = client.ListUsers(ctx)
		payload = items
		for _, u := range items {
			rows = append(rows, fmt.Sprintf("%-5d %-8s %-26s %s", u.ID, u.Role, u.FullName, u.Email))
		}
	default:
		fmt.Fprintf(w, "Error: unknown resource %q\n", resource)
		return 1
	}

	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		if api.IsUnauthorized(err) {
			return 3
		}
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(rows) == 0 {
		fmt.Fprintf(w, "No %s found.\n", resource)
		return 0
	}
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
	return 0
}

// firstLine flattens multi-line detail text for single-line output.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
