package api

import (
	"HomeCrew/internal/cli/repo/fs"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityClient_SignIn(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		var req struct {
			Login    string `json:"login"`
			Password string `json:"password"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			http.Error(w, "invalid login or password", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-abc"})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user_id": 42, "login": req.Login, "full_name": "Alice Smith",
		})
	}))
	defer srv.Close()

	c := &IdentityClient{baseURL: srv.URL}

	p, err := c.SignIn(context.Background(), "alice", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "42", p.UserID)
	assert.Equal(t, "Alice Smith", p.FullName)

	// The auth cookie landed in the local secret store.
	token, err := fs.AuthFSStore{}.Load()
	assert.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	_, err = c.SignIn(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIdentityClient_RegisterConflict(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/register", r.URL.Path)
		http.Error(w, "login is already taken", http.StatusConflict)
	}))
	defer srv.Close()

	c := &IdentityClient{baseURL: srv.URL}
	_, err := c.Register(context.Background(), "john", "p", "", "")
	assert.ErrorContains(t, err, "already taken")
}
