package pharmd

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. Token issuance and
// verification belong to the backend; this only carries the exchange.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", loginBody{Email: email, Password: password}, false)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "login")
	if err != nil {
		return nil, err
	}

	var user AuthUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected login response shape"}
	}
	return &user, nil
}

// Signup registers a new user and returns the issued token.
func (c *Client) Signup(ctx context.Context, username, email, password string) (*AuthUser, error) {
	if strings.TrimSpace(username) == "" {
		return nil, &ValidationError{Field: "username", Message: "username is required"}
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/signup", signupBody{Username: username, Email: email, Password: password}, false)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "signup")
	if err != nil {
		return nil, err
	}

	var user AuthUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected signup response shape"}
	}
	return &user, nil
}
