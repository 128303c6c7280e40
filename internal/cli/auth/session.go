package auth

import (
	"encoding/json"
	"errors"

	fsrepo "HomeCrew/internal/cli/repo/fs"
)

// Profile is the signed-in user as returned by the identity provider:
// an identifier plus optional display fields.
type Profile struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ErrNotSignedIn is returned when no profile is stored locally.
var ErrNotSignedIn = errors.New("not signed in")

// Session persists the signed-in profile in the local secret store.
// Each sign-in overwrites the previous profile; sign-out removes it
// together with the auth token.
type Session struct {
	store fsrepo.AuthFSStore
}

func NewSession() *Session {
	return &Session{}
}

// SignedIn stores the profile after a successful identity-provider
// handshake.
func (s *Session) SignedIn(p Profile) error {
	if p.UserID == "" {
		return errors.New("profile has no user id")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.store.SaveProfile(data)
}

// Current returns the stored profile, or ErrNotSignedIn.
func (s *Session) Current() (Profile, error) {
	data, err := s.store.LoadProfile()
	if err != nil {
		return Profile{}, ErrNotSignedIn
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, ErrNotSignedIn
	}
	return p, nil
}

// SignOut drops the stored profile and the auth token.
func (s *Session) SignOut() error {
	if err := s.store.DeleteProfile(); err != nil {
		return err
	}
	return s.store.DeleteToken()
}
