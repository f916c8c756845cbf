// ABOUTME: Food resource calls against /api/foods
// ABOUTME: Food items reference a destination by id

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Food is one local dish recommended for a destination.
type Food struct {
	FID     int    `json:"fid"`
	FDetail string `json:"fdetail"`
	FImg    string `json:"fimg"`
	DID     int    `json:"did"`
}

// FoodInput is the create/update payload.
type FoodInput struct {
	FDetail string `json:"fdetail"`
	FImg    string `json:"fimg"`
	DID     int    `json:"did"`
}

// ListFoods fetches food items, optionally scoped to a destination.
func (c *Client) ListFoods(ctx context.Context, destinationID int) ([]Food, error) {
	var out []Food
	if err := c.get(ctx, "/api/foods", intQuery("did", destinationID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFood creates a food item; the backend answers 201.
func (c *Client) CreateFood(ctx context.Context, in *FoodInput) (*Food, error) {
	var out Food
	if err := c.send(ctx, http.MethodPost, "/api/foods", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFood replaces the food item's attributes.
func (c *Client) UpdateFood(ctx context.Context, id int, in *FoodInput) (*Food, error) {
	var out Food
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/foods/%d", id), in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFood removes a food item by id.
func (c *Client) DeleteFood(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/foods/%d", id), nil, http.StatusOK, nil)
}
