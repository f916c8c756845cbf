// ABOUTME: User resource calls against /api/users
// ABOUTME: Listing requires a token; users register through the public site

package api

import (
	"context"
	"fmt"
	"net/http"
)

// User is one platform account.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserCounts is the dashboard summary for accounts.
type UserCounts struct {
	Total   int `json:"total"`
	Regular int `json:"regular"`
	Admin   int `json:"admin"`
}

// ListUsers fetches all accounts. Requires a token.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.get(ctx, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser fetches a single account by id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var out User
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account by id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, http.StatusOK, nil)
}

// UserCounts fetches the total/regular/admin summary.
func (c *Client) UserCounts(ctx context.Context) (*UserCounts, error) {
	var out UserCounts
	if err := c.get(ctx, "/api/users/counts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
