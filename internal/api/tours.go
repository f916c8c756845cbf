// ABOUTME: Tour and itinerary resource calls under /api/tours
// ABOUTME: Tours reference a package; itineraries reference a tour

package api

import (
	"context"
	"fmt"
	"net/http"
)

// Tour is one guided tour with up to four gallery images.
type Tour struct {
	TID         int         `json:"tid"`
	TName       string      `json:"tname"`
	TDay        int         `json:"tday"`
	TPickup     string      `json:"tpickup"`
	TImg1       string      `json:"timg1"`
	TImg2       string      `json:"timg2"`
	TImg3       string      `json:"timg3"`
	TImg4       string      `json:"timg4"`
	TOverview   string      `json:"toverview"`
	THighlights string      `json:"thighlights"`
	PackageID   int         `json:"package_id"`
	Itineraries []Itinerary `json:"itineraries,omitempty"`
}

// TourInput is the create/update payload for a tour.
type TourInput struct {
	TName       string `json:"tname"`
	TDay        int    `json:"tday"`
	TPickup     string `json:"tpickup"`
	TImg1       string `json:"timg1"`
	TImg2       string `json:"timg2"`
	TImg3       string `json:"timg3"`
	TImg4       string `json:"timg4"`
	TOverview   string `json:"toverview"`
	THighlights string `json:"thighlights"`
	PackageID   int    `json:"package_id"`
}

// Itinerary is a day-by-day plan attached to a tour. Days beyond the first
// may be empty.
type Itinerary struct {
	IID   int    `json:"iid"`
	IName string `json:"iname"`
	IDay1 string `json:"iday1"`
	IDay2 string `json:"iday2"`
	IDay3 string `json:"iday3"`
	IDay4 string `json:"iday4"`
	IDay5 string `json:"iday5"`
	IDay6 string `json:"iday6"`
	IDay7 string `json:"iday7"`
	TID   int    `json:"tid"`
}

// ItineraryInput is the create/update payload for an itinerary.
type ItineraryInput struct {
	IName string `json:"iname"`
	IDay1 string `json:"iday1"`
	IDay2 string `json:"iday2"`
	IDay3 string `json:"iday3"`
	IDay4 string `json:"iday4"`
	IDay5 string `json:"iday5"`
	IDay6 string `json:"iday6"`
	IDay7 string `json:"iday7"`
	TID   int    `json:"tid"`
}

// ListTours fetches tours with their itineraries, optionally scoped to a
// package. packageID 0 returns all tours.
func (c *Client) ListTours(ctx context.Context, packageID int) ([]Tour, error) {
	var out []Tour
	if err := c.get(ctx, "/api/tours/details", intQuery("package_id", packageID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTour creates a tour; the backend answers 201 with the record.
func (c *Client) CreateTour(ctx context.Context, in *TourInput) (*Tour, error) {
	var out Tour
	if err := c.send(ctx, http.MethodPost, "/api/tours/details", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTour replaces the tour's attributes.
func (c *Client) UpdateTour(ctx context.Context, id int, in *TourInput) (*Tour, error) {
	var out Tour
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/tours/details/%d", id), in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTour removes a tour by id.
func (c *Client) DeleteTour(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/tours/details/%d", id), nil, http.StatusOK, nil)
}

// ListItineraries fetches itineraries, optionally scoped to a tour.
func (c *Client) ListItineraries(ctx context.Context, tourID int) ([]Itinerary, error) {
	var out []Itinerary
	if err := c.get(ctx, "/api/tours/itineraries", intQuery("tid", tourID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItinerary creates an itinerary; the backend answers 201.
func (c *Client) CreateItinerary(ctx context.Context, in *ItineraryInput) (*Itinerary, error) {
	var out Itinerary
	if err := c.send(ctx, http.MethodPost, "/api/tours/itineraries", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItinerary replaces the itinerary's attributes.
func (c *Client) UpdateItinerary(ctx context.Context, id int, in *ItineraryInput) (*Itinerary, error) {
	var out Itinerary
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/tours/itineraries/%d", id), in, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItinerary removes an itinerary by id.
func (c *Client) DeleteItinerary(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/tours/itineraries/%d", id), nil, http.StatusOK, nil)
}
