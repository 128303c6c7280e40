package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthFSStore_TokenRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s := AuthFSStore{}

	_, err := s.Load()
	assert.Error(t, err, "no token stored yet")

	assert.NoError(t, s.Save("tok-123\n"))
	got, err := s.Load()
	assert.NoError(t, err)
	assert.Equal(t, "tok-123", got, "trailing whitespace is trimmed")

	assert.NoError(t, s.DeleteToken())
	_, err = s.Load()
	assert.Error(t, err)

	// Deleting again is not an error.
	assert.NoError(t, s.DeleteToken())
}

func TestAuthFSStore_ProfileRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s := AuthFSStore{}

	assert.Error(t, s.SaveProfile(nil))

	assert.NoError(t, s.SaveProfile([]byte(`{"user_id":"42"}`)))
	got, err := s.LoadProfile()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"42"}`, string(got))

	// A later sign-in overwrites the slot.
	assert.NoError(t, s.SaveProfile([]byte(`{"user_id":"43"}`)))
	got, _ = s.LoadProfile()
	assert.JSONEq(t, `{"user_id":"43"}`, string(got))

	assert.NoError(t, s.DeleteProfile())
	_, err = s.LoadProfile()
	assert.Error(t, err)
	assert.NoError(t, s.DeleteProfile())
}
