// ABOUTME: Authentication call against the backend signin endpoint
// ABOUTME: Exchanges email/password credentials for a token and profile

package api

import (
	"context"
	"net/http"
)

// Credentials is the signin request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful signin payload.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignIn exchanges credentials for a token and profile. A wrong password
// surfaces as KindUnauthorized with the server's message verbatim.
func (c *Client) SignIn(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.send(ctx, http.MethodPost, "/api/signin", Credentials{Email: email, Password: password}, http.StatusOK, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, newError(KindServerError, http.StatusOK, "signin response missing token")
	}
	return &resp, nil
}
