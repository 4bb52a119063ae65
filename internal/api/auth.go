package api

import (
	"context"
	"net/http"

	"github.com/rashedq/artscape/internal/model"
)

// SignupRequest is the POST /auth/signup payload.
type SignupRequest struct {
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirmPassword,omitempty"`
	Role            model.Role `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Signup registers an account. It never grants a session by itself.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/signup", req, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me fetches the current-user record for the persisted token.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.getJSON(ctx, "/user/me", nil, &u)
	return u, err
}
