// ABOUTME: Place resource calls against /api/places
// ABOUTME: List responses arrive wrapped in a "places" envelope

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Place is one sight worth visiting at a destination.
type Place struct {
	PID     int    `json:"pid"`
	PDetail string `json:"pdetail"`
	PImg    string `json:"pimg"`
	DID     int    `json:"did"`
}

// PlaceInput is the create/update payload.
type PlaceInput struct {
	PDetail string `json:"pdetail"`
	PImg    string `json:"pimg"`
	DID     int    `json:"did"`
}

// ListPlaces fetches places, optionally scoped to a destination. Same
// envelope rule as activities.
func (c *Client) ListPlaces(ctx context.Context, destinationID int) ([]Place, error) {
	var out struct {
		Places *[]Place `json:"places"`
	}
	if err := c.get(ctx, "/api/places", intQuery("did", destinationID), &out); err != nil {
		return nil, err
	}
	if out.Places == nil {
		return nil, newError(KindServerError, http.StatusOK, "unexpected places response shape")
	}
	return *out.Places, nil
}

// CreatePlace creates a place; the backend answers 201.
func (c *Client) CreatePlace(ctx context.Context, in *PlaceInput) (*Place, error) {
	var out Place
	if err := c.send(ctx, http.MethodPost, "/api/places", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePlace replaces the place's attributes.
func (c *Client) UpdatePlace(ctx context.Context, id int, in *PlaceInput) (*Place, error) {
	var out Place
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/places/%d", id), in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePlace removes a place by id.
func (c *Client) DeletePlace(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/places/%d", id), nil, http.StatusOK, nil)
}
