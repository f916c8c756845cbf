// ABOUTME: Destination resource calls against /api/destinations
// ABOUTME: Full CRUD plus the dashboard counts endpoint

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Destination is one travel destination record.
type Destination struct {
	DID         int    `json:"did"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	DType       string `json:"dtype"` // "domestic" or "international"
}

// DestinationInput is the create/update payload. Identifiers are always
// server-assigned.
type DestinationInput struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	DType       string `json:"dtype"`
}

// DestinationCounts is the dashboard summary for destinations.
type DestinationCounts struct {
	Total         int `json:"total"`
	Domestic      int `json:"domestic"`
	International int `json:"international"`
}

// ListDestinations fetches destinations, optionally scoped to a dtype.
// An empty dtype returns the whole collection.
func (c *Client) ListDestinations(ctx context.Context, dtype string) ([]Destination, error) {
	var query url.Values
	if dtype != "" {
		query = url.Values{"dtype": []string{dtype}}
	}
	var out []Destination
	if err := c.get(ctx, "/api/destinations", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDestination fetches a single destination by id.
func (c *Client) GetDestination(ctx context.Context, id int) (*Destination, error) {
	var out Destination
	if err := c.get(ctx, fmt.Sprintf("/api/destinations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDestination creates a destination and returns the record with its
// server-assigned id. Anything other than 201 is a failure.
func (c *Client) CreateDestination(ctx context.Context, in *DestinationInput) (*Destination, error) {
	var out Destination
	if err := c.send(ctx, http.MethodPost, "/api/destinations", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDestination replaces the destination's attributes and returns the
// updated record.
func (c *Client) UpdateDestination(ctx context.Context, id int, in *DestinationInput) (*Destination, error) {
	var out Destination
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/destinations/%d", id), in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDestination removes a destination by id.
func (c *Client) DeleteDestination(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/destinations/%d", id), nil, http.StatusOK, nil)
}

// DestinationCounts fetches the total/domestic/international summary.
func (c *Client) DestinationCounts(ctx context.Context) (*DestinationCounts, error) {
	var out DestinationCounts
	if err := c.get(ctx, "/api/destinations/counts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
