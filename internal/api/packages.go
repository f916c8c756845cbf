// ABOUTME: Package resource calls against /api/packages
// ABOUTME: Packages reference a destination by id

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Package is one bookable travel package.
type Package struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Price         float64      `json:"price"`
	Description   string       `json:"description"`
	Image         string       `json:"image"`
	DestinationID int          `json:"destinationId"`
	Destination   *Destination `json:"destination,omitempty"`
}

// PackageInput is the create/update payload.
type PackageInput struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	DestinationID int     `json:"destinationId"`
}

// ListPackages fetches packages, optionally scoped to a destination.
// destinationID 0 returns the whole collection.
func (c *Client) ListPackages(ctx context.Context, destinationID int) ([]Package, error) {
	var out []Package
	if err := c.get(ctx, "/api/packages", intQuery("destinationId", destinationID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPackage fetches a single package by id.
func (c *Client) GetPackage(ctx context.Context, id int) (*Package, error) {
	var out Package
	if err := c.get(ctx, fmt.Sprintf("/api/packages/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePackage creates a package; the backend answers 201 with the record.
func (c *Client) CreatePackage(ctx context.Context, in *PackageInput) (*Package, error) {
	var out Package
	if err := c.send(ctx, http.MethodPost, "/api/packages", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePackage replaces the package's attributes.
func (c *Client) UpdatePackage(ctx context.Context, id int, in *PackageInput) (*Package, error) {
	var out Package
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/packages/%d", id), in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePackage removes a package by id.
func (c *Client) DeletePackage(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/packages/%d", id), nil, http.StatusOK, nil)
}
