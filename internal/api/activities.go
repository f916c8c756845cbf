// ABOUTME: Activity resource calls against /api/activities
// ABOUTME: List responses arrive wrapped in an "activities" envelope

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Activity is one thing to do at a destination.
type Activity struct {
	AID     int    `json:"aid"`
	ADetail string `json:"adetail"`
	AImg    string `json:"aimg"`
	DID     int    `json:"did"`
}

// ActivityInput is the create/update payload.
type ActivityInput struct {
	ADetail string `json:"adetail"`
	AImg    string `json:"aimg"`
	DID     int    `json:"did"`
}

// ListActivities fetches activities, optionally scoped to a destination.
// The backend wraps the collection; a response without the envelope is a
// server error rather than an empty list.
func (c *Client) ListActivities(ctx context.Context, destinationID int) ([]Activity, error) {
	var out struct {
		Activities *[]Activity `json:"activities"`
	}
	if err := c.get(ctx, "/api/activities", intQuery("did", destinationID), &out); err != nil {
		return nil, err
	}
	if out.Activities == nil {
		return nil, newError(KindServerError, http.StatusOK, "unexpected activities response shape")
	}
	return *out.Activities, nil
}

// CreateActivity creates an activity; the backend answers 201.
func (c *Client) CreateActivity(ctx context.Context, in *ActivityInput) (*Activity, error) {
	var out Activity
	if err := c.send(ctx, http.MethodPost, "/api/activities", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateActivity replaces the activity's attributes.
func (c *Client) UpdateActivity(ctx context.Context, id int, in *ActivityInput) (*Activity, error) {
	var out Activity
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/activities/%d", id), in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteActivity removes an activity by id.
func (c *Client) DeleteActivity(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/activities/%d", id), nil, http.StatusOK, nil)
}
