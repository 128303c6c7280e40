package model

import (
	"HomeCrew/internal/cli/store"
	"sort"
	"strings"
)

// Record types as stored in the record store.
const (
	RecordTypeHousehold     = "HouseHold"
	RecordTypeStaff         = "Staff"
	RecordTypeStaffDocument = "StaffDocument"
)

// Reference field names shared between mappers and services.
const (
	FieldHouseholdRef = "householdID"
	FieldStaffRef     = "staffID"
	FieldIDCards      = "idCards"
)

// Household is a home with zero or more staff members attached by
// reference.
type Household struct {
	ID      string
	Name    string
	Address string
	Notes   string // optional
}

// HouseholdFromRecord maps a raw record to a Household. It never fails:
// missing or malformed fields resolve to defaults.
func HouseholdFromRecord(rec store.Record) Household {
	return Household{
		ID:      rec.ID,
		Name:    rec.String("name", "Unknown"),
		Address: rec.String("address", "No address"),
		Notes:   rec.String("notes", ""),
	}
}

// ToFields converts the household back to record fields. An empty Notes
// emits an explicit unset so a save clears the stored value instead of
// preserving it.
func (h Household) ToFields() map[string]any {
	fields := map[string]any{
		"name":    h.Name,
		"address": h.Address,
	}
	if h.Notes != "" {
		fields["notes"] = h.Notes
	} else {
		fields["notes"] = store.Unset
	}
	return fields
}

// SortHouseholdsByName orders households by name ascending.
func SortHouseholdsByName(list []Household) {
	sort.Slice(list, func(i, j int) bool {
		return strings.Compare(list[i].Name, list[j].Name) < 0
	})
}
