// ABOUTME: Resource adapters binding the typed API client to the CRUD screens
// ABOUTME: Shared helpers for row formatting and filter value parsing

package resources

import (
	"strconv"
	"strings"
)

// truncate shortens cell text so long descriptions do not blow up table rows.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// atoi converts a validated numeric buffer value. Validation happens before
// submit, so parse failures collapse to zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
