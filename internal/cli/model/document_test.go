package model

import (
	"HomeCrew/internal/cli/store"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaffDocumentFromRecord_DefaultName(t *testing.T) {
	d := StaffDocumentFromRecord(store.Record{ID: "doc-1", Fields: map[string]any{}})
	assert.Equal(t, "Document", d.Name)
}

func TestStaffDocument_FileType(t *testing.T) {
	d := StaffDocument{Asset: store.Asset{Name: "Passport.JPG"}}
	assert.Equal(t, "jpg", d.FileType())
	assert.True(t, d.IsImage())
	assert.False(t, d.IsPDF())

	d = StaffDocument{Asset: store.Asset{Path: "/tmp/scan.pdf"}}
	assert.Equal(t, "pdf", d.FileType())
	assert.True(t, d.IsPDF())

	d = StaffDocument{}
	assert.Equal(t, "", d.FileType())
	assert.False(t, d.IsImage())
}

func TestSortDocumentsByName(t *testing.T) {
	docs := []StaffDocument{{Name: "Voter ID"}, {Name: "Aadhaar Card"}, {Name: "Passport"}}
	SortDocumentsByName(docs)
	assert.Equal(t, "Aadhaar Card", docs[0].Name)
	assert.Equal(t, "Passport", docs[1].Name)
	assert.Equal(t, "Voter ID", docs[2].Name)
}

func TestToDocumentItems_SkipsUnresolvedAssets(t *testing.T) {
	docs := []StaffDocument{
		{Name: "Passport", Asset: store.Asset{ID: "a1", Path: "/tmp/passport.jpg"}},
		{Name: "Pending", Asset: store.Asset{ID: "a2"}},
	}
	items := ToDocumentItems(docs)
	assert.Len(t, items, 1)
	assert.Equal(t, "Passport", items[0].Name)
}
