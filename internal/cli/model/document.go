package model

import (
	"HomeCrew/internal/cli/store"
	"path/filepath"
	"sort"
	"strings"
)

// StaffDocument is a scanned ID document attached to a staff member by
// reference. The binary payload lives in the store as an asset and is
// resolved to a local file path on fetch.
type StaffDocument struct {
	ID       string
	StaffRef store.Reference
	Name     string
	Asset    store.Asset
}

// StaffDocumentFromRecord maps a raw record to a StaffDocument. It
// never fails; a missing name defaults to "Document".
func StaffDocumentFromRecord(rec store.Record) StaffDocument {
	d := StaffDocument{
		ID:   rec.ID,
		Name: rec.String("name", "Document"),
	}
	if ref, ok := rec.Reference(FieldStaffRef); ok {
		d.StaffRef = ref
	}
	if a, ok := rec.Asset("document"); ok {
		d.Asset = a
	}
	return d
}

// FileType is the lowercased extension of the underlying file.
func (d StaffDocument) FileType() string {
	name := d.Asset.Name
	if name == "" {
		name = d.Asset.Path
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

func (d StaffDocument) IsImage() bool {
	switch d.FileType() {
	case "jpg", "jpeg", "png", "heic", "heif":
		return true
	}
	return false
}

func (d StaffDocument) IsPDF() bool {
	return d.FileType() == "pdf"
}

// SortDocumentsByName orders documents by name ascending, byte order.
func SortDocumentsByName(list []StaffDocument) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}

// DocumentItem is a staged local file awaiting upload. It is client
// ephemera: it becomes a StaffDocument record only on successful save
// and is never persisted as-is.
type DocumentItem struct {
	Path string
	Name string
}

// ToDocumentItems converts fetched documents back into staged items,
// dropping ones whose asset has no resolved local file.
func ToDocumentItems(docs []StaffDocument) []DocumentItem {
	items := make([]DocumentItem, 0, len(docs))
	for _, d := range docs {
		if d.Asset.Path == "" {
			continue
		}
		items = append(items, DocumentItem{Path: d.Asset.Path, Name: d.Name})
	}
	return items
}
