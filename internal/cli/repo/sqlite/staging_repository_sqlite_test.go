package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStaging(t *testing.T) *StagingRepositorySQLite {
	t.Helper()
	r, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open staging: %v", err)
	}
	if err := r.Migrate(); err != nil {
		t.Fatalf("migrate staging: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestStaging_StageAndList(t *testing.T) {
	r := newTestStaging(t)

	src := writeSource(t, "passport.jpg", "scan bytes")
	doc, err := r.Stage(src, "Passport")
	assert.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, ".jpg", filepath.Ext(doc.Path), "staged copy keeps the extension")

	// The staged copy is independent of the source.
	assert.NoError(t, os.Remove(src))
	data, err := os.ReadFile(doc.Path)
	assert.NoError(t, err)
	assert.Equal(t, "scan bytes", string(data))

	list, err := r.List()
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Passport", list[0].Name)
}

func TestStaging_StageMissingSource(t *testing.T) {
	r := newTestStaging(t)
	_, err := r.Stage(filepath.Join(t.TempDir(), "nope.jpg"), "Passport")
	assert.Error(t, err)

	list, err := r.List()
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestStaging_Remove(t *testing.T) {
	r := newTestStaging(t)
	doc, err := r.Stage(writeSource(t, "a.pdf", "x"), "Aadhaar Card")
	assert.NoError(t, err)

	assert.NoError(t, r.Remove(doc.ID))
	_, err = os.Stat(doc.Path)
	assert.True(t, os.IsNotExist(err), "staged copy must be removed with the row")

	assert.Error(t, r.Remove(doc.ID), "removing twice reports the missing id")
}

func TestStaging_Clear(t *testing.T) {
	r := newTestStaging(t)
	d1, _ := r.Stage(writeSource(t, "a.jpg", "1"), "Passport")
	d2, _ := r.Stage(writeSource(t, "b.jpg", "2"), "Voter ID")

	assert.NoError(t, r.Clear())
	list, err := r.List()
	assert.NoError(t, err)
	assert.Empty(t, list)
	for _, p := range []string{d1.Path, d2.Path} {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err))
	}
}
