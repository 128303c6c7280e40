package model

import (
	"HomeCrew/internal/cli/store"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaffFromRecord_Defaults(t *testing.T) {
	// An empty record still maps; every optional field gets its default.
	s := StaffFromRecord(store.Record{ID: "st-1", Fields: map[string]any{}})

	assert.Equal(t, "st-1", s.ID)
	assert.True(t, s.IsActive, "missing isActive must read as active")
	assert.Equal(t, DefaultLeavesAllocated, s.LeavesAllocated)
	assert.Equal(t, DefaultCurrencyCode, s.CurrencyCode)
	assert.Nil(t, s.LeavingDate)
	assert.Empty(t, s.DocumentRefs)
}

func TestStaffFromRecord_InactiveWithoutLeavingDate(t *testing.T) {
	// The mapper reflects what is stored; it never invents a leaving date
	// for an inactive member.
	s := StaffFromRecord(store.Record{ID: "st-2", Fields: map[string]any{"isActive": false}})
	assert.False(t, s.IsActive)
	assert.Nil(t, s.LeavingDate)
}

func TestStaff_ToFields_OptionalFieldsUnset(t *testing.T) {
	s := Staff{
		HouseholdRef:  store.Reference{RecordID: "hh-1"},
		FullLegalName: "Maria Cruz",
		StartingDate:  time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		MonthlySalary: 18000,
		CurrencyCode:  "INR",
		AgreedDuties:  "Cooking",
		IsActive:      true,
	}
	fields := s.ToFields()

	assert.Equal(t, store.Unset, fields["commonlyKnownAs"])
	assert.Equal(t, store.Unset, fields["leavingDate"])
	_, hasCards := fields[FieldIDCards]
	assert.False(t, hasCards, "empty document list must not touch idCards")
}

func TestStaff_RecordRoundTripStable(t *testing.T) {
	// Writing a staff member, reading it back and writing it again must
	// produce identical fields. A store write drops Unset markers, so
	// they are stripped before comparing, the same way a save would.
	left := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		staff Staff
	}{
		{"required fields only", Staff{
			HouseholdRef:    store.Reference{RecordID: "hh-1"},
			FullLegalName:   "Maria Cruz",
			StartingDate:    time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
			LeavesAllocated: DefaultLeavesAllocated,
			MonthlySalary:   18000,
			CurrencyCode:    DefaultCurrencyCode,
			AgreedDuties:    "Cooking",
			IsActive:        true,
		}},
		{"fully populated", Staff{
			HouseholdRef:    store.Reference{RecordID: "hh-1"},
			FullLegalName:   "Maria Cruz",
			CommonlyKnownAs: "Mary",
			StartingDate:    time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
			LeavingDate:     &left,
			LeavesAllocated: 20,
			MonthlySalary:   21500.50,
			CurrencyCode:    "USD",
			AgreedDuties:    "Cooking, cleaning",
			IsActive:        false,
			DocumentRefs:    []store.Reference{{RecordID: "doc-1"}, {RecordID: "doc-2"}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stored := dropUnset(tc.staff.ToFields())
			reread := StaffFromRecord(store.Record{ID: "st-1", Fields: stored})
			assert.Equal(t, stored, dropUnset(reread.ToFields()))
		})
	}
}

func dropUnset(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == store.Unset {
			continue
		}
		out[k] = v
	}
	return out
}

func TestStaff_DisplayName(t *testing.T) {
	s := Staff{FullLegalName: "Maria Cruz"}
	assert.Equal(t, "Maria Cruz", s.DisplayName())
	s.CommonlyKnownAs = "Mary"
	assert.Equal(t, "Mary", s.DisplayName())
}

func TestStaff_EmploymentDuration(t *testing.T) {
	now := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

	s := Staff{StartingDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2 years, 2 months", s.EmploymentDuration(now))

	left := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	s.LeavingDate = &left
	assert.Equal(t, "1 month", s.EmploymentDuration(now))

	s = Staff{}
	assert.Equal(t, "Unknown", s.EmploymentDuration(now))
}

func TestSortStaffByName_CaseInsensitive(t *testing.T) {
	list := []Staff{
		{FullLegalName: "bob"},
		{FullLegalName: "Alice"},
		{FullLegalName: "CAROL"},
	}
	SortStaffByName(list)
	assert.Equal(t, "Alice", list[0].FullLegalName)
	assert.Equal(t, "bob", list[1].FullLegalName)
	assert.Equal(t, "CAROL", list[2].FullLegalName)
}

func TestFilterActive(t *testing.T) {
	list := []Staff{
		{ID: "a", IsActive: true},
		{ID: "b", IsActive: false},
	}
	assert.Len(t, FilterActive(list, false), 1)
	assert.Len(t, FilterActive(list, true), 2)
}

func TestHouseholdFromRecord_Defaults(t *testing.T) {
	h := HouseholdFromRecord(store.Record{ID: "hh-1", Fields: map[string]any{}})
	assert.Equal(t, "Unknown", h.Name)
	assert.Equal(t, "No address", h.Address)
	assert.Empty(t, h.Notes)
}

func TestHousehold_ToFields_EmptyNotesUnset(t *testing.T) {
	fields := Household{Name: "Smith Residence", Address: "12 Lake Road"}.ToFields()
	assert.Equal(t, store.Unset, fields["notes"])
}
