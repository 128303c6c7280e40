package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "HomeCrew/internal/cli/repo/fs"
)

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body, nil
}

// PersistAuthFromResponse extracts the auth cookie from the response
// and saves it through the file secret store.
func PersistAuthFromResponse(resp *http.Response) error {
	store := fsrepo.AuthFSStore{}
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}
