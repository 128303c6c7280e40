package model

import (
	"HomeCrew/internal/cli/store"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Defaults applied when a staff record is missing a field.
const (
	DefaultLeavesAllocated = 12
	DefaultCurrencyCode    = "INR"
)

// Staff is one employed household member. The household reference is
// set at creation and never changes afterwards.
type Staff struct {
	ID              string
	HouseholdRef    store.Reference
	FullLegalName   string
	CommonlyKnownAs string // optional
	StartingDate    time.Time
	LeavingDate     *time.Time // present iff employment ended
	LeavesAllocated int
	MonthlySalary   float64
	CurrencyCode    string
	AgreedDuties    string
	IsActive        bool

	// DocumentRefs mirrors the idCards field: a denormalized forward
	// list of document references. The reverse query is authoritative;
	// only the document sync service writes this list.
	DocumentRefs []store.Reference
}

// StaffFromRecord maps a raw record to a Staff. It never fails: every
// optional, missing or mistyped field resolves to a documented default.
func StaffFromRecord(rec store.Record) Staff {
	s := Staff{
		ID:              rec.ID,
		FullLegalName:   rec.String("fullLegalName", ""),
		CommonlyKnownAs: rec.String("commonlyKnownAs", ""),
		LeavesAllocated: int(rec.Int("leavesAllocated", DefaultLeavesAllocated)),
		MonthlySalary:   rec.Float("monthlySalary", 0),
		CurrencyCode:    rec.String("currencyCode", DefaultCurrencyCode),
		AgreedDuties:    rec.String("agreedDuties", ""),
		IsActive:        rec.Bool("isActive", true),
		DocumentRefs:    rec.ReferenceList(FieldIDCards),
	}
	if ref, ok := rec.Reference(FieldHouseholdRef); ok {
		s.HouseholdRef = ref
	}
	if t, ok := rec.Time("startingDate"); ok {
		s.StartingDate = t
	}
	if t, ok := rec.Time("leavingDate"); ok {
		s.LeavingDate = &t
	}
	return s
}

// ToFields converts the staff member back to record fields. Optional
// fields that are empty emit an explicit unset so an update clears the
// stored value; omitted keys would preserve it instead.
func (s Staff) ToFields() map[string]any {
	fields := map[string]any{
		FieldHouseholdRef: s.HouseholdRef,
		"fullLegalName":   s.FullLegalName,
		"startingDate":    s.StartingDate,
		"leavesAllocated": int64(s.LeavesAllocated),
		"monthlySalary":   s.MonthlySalary,
		"currencyCode":    s.CurrencyCode,
		"agreedDuties":    s.AgreedDuties,
		"isActive":        s.IsActive,
	}
	if s.CommonlyKnownAs != "" {
		fields["commonlyKnownAs"] = s.CommonlyKnownAs
	} else {
		fields["commonlyKnownAs"] = store.Unset
	}
	if s.LeavingDate != nil {
		fields["leavingDate"] = *s.LeavingDate
	} else {
		fields["leavingDate"] = store.Unset
	}
	if len(s.DocumentRefs) > 0 {
		fields[FieldIDCards] = s.DocumentRefs
	}
	return fields
}

// DisplayName prefers the commonly-known name when present.
func (s Staff) DisplayName() string {
	if s.CommonlyKnownAs != "" {
		return s.CommonlyKnownAs
	}
	return s.FullLegalName
}

// EmploymentStatus renders the active flag for display.
func (s Staff) EmploymentStatus() string {
	if s.IsActive {
		return "Active"
	}
	return "Inactive"
}

// EmploymentDuration renders the time from starting date to leaving
// date (or now) in whole years and months.
func (s Staff) EmploymentDuration(now time.Time) string {
	end := now
	if s.LeavingDate != nil {
		end = *s.LeavingDate
	}
	if s.StartingDate.IsZero() || end.Before(s.StartingDate) {
		return "Unknown"
	}
	years := end.Year() - s.StartingDate.Year()
	months := int(end.Month()) - int(s.StartingDate.Month())
	if end.Day() < s.StartingDate.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	if years > 0 {
		return fmt.Sprintf("%d %s, %d %s", years, plural(years, "year"), months, plural(months, "month"))
	}
	return fmt.Sprintf("%d %s", months, plural(months, "month"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// SortStaffByName orders staff case-insensitively by full legal name.
func SortStaffByName(list []Staff) {
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].FullLegalName) < strings.ToLower(list[j].FullLegalName)
	})
}

// FilterActive returns only active staff unless includeInactive is set.
func FilterActive(list []Staff, includeInactive bool) []Staff {
	if includeInactive {
		return list
	}
	out := make([]Staff, 0, len(list))
	for _, s := range list {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}
