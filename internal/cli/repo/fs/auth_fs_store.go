package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// AuthFSStore is the file-based secret store for the CLI: the auth
// token and the signed-in user profile blob, kept under the user config
// directory with 0600 permissions.
type AuthFSStore struct{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "HomeCrew")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func tokenPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

func profilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	// One fixed account slot; each sign-in overwrites it.
	return filepath.Join(dir, "profile"), nil
}

// Save stores the auth token.
func (AuthFSStore) Save(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load reads the auth token, trimming trailing whitespace.
func (AuthFSStore) Load() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	b = trimTrailing(b)
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}

// DeleteToken removes the stored token. Missing file is not an error.
func (AuthFSStore) DeleteToken() error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SaveProfile stores the signed-in user profile blob, overwriting any
// previous one.
func (AuthFSStore) SaveProfile(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty profile")
	}
	p, err := profilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}

// LoadProfile reads the stored profile blob.
func (AuthFSStore) LoadProfile() ([]byte, error) {
	p, err := profilePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, errors.New("no stored profile")
	}
	return b, nil
}

// DeleteProfile removes the stored profile. Missing file is not an
// error.
func (AuthFSStore) DeleteProfile() error {
	p, err := profilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func trimTrailing(b []byte) []byte {
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return b
}
