package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"HomeCrew/internal/cli/auth"
	"HomeCrew/internal/config"
)

// IdentityClient talks to the identity provider: a sign-in request
// yields a user identifier plus optional profile fields, or an error.
// The auth cookie from a successful response is persisted to the local
// secret store.
type IdentityClient struct {
	baseURL string
}

func NewIdentityClient(cfg *config.Config) *IdentityClient {
	return &IdentityClient{baseURL: strings.TrimRight(cfg.ServerURL, "/")}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

type profileResponse struct {
	UserID   int64  `json:"user_id"`
	Login    string `json:"login"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ErrInvalidCredentials is returned on a rejected login.
var ErrInvalidCredentials = errors.New("invalid login or password")

// SignIn performs the login handshake and persists the auth cookie.
func (c *IdentityClient) SignIn(ctx context.Context, login, password string) (auth.Profile, error) {
	return c.post(ctx, "/api/user/login", credentialsRequest{Login: login, Password: password})
}

// Register creates an account and persists the auth cookie.
func (c *IdentityClient) Register(ctx context.Context, login, password, fullName, email string) (auth.Profile, error) {
	return c.post(ctx, "/api/user/register", credentialsRequest{
		Login:    login,
		Password: password,
		FullName: fullName,
		Email:    email,
	})
}

func (c *IdentityClient) post(ctx context.Context, path string, req credentialsRequest) (auth.Profile, error) {
	resp, body, err := PostJSON(ctx, c.baseURL+path, req, "")
	if err != nil {
		return auth.Profile{}, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return auth.Profile{}, ErrInvalidCredentials
	case http.StatusConflict:
		return auth.Profile{}, errors.New("login is already taken")
	default:
		return auth.Profile{}, fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	if err := PersistAuthFromResponse(resp); err != nil {
		return auth.Profile{}, fmt.Errorf("saving auth: %w", err)
	}
	var pr profileResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return auth.Profile{}, err
	}
	return auth.Profile{
		UserID:   strconv.FormatInt(pr.UserID, 10),
		FullName: pr.FullName,
		Email:    pr.Email,
	}, nil
}
