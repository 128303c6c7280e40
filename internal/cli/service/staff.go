package service

import (
	"HomeCrew/internal/cli/model"
	"HomeCrew/internal/cli/store"
	"context"
	"time"

	"go.uber.org/zap"
)

// StaffService holds the staff lifecycle workflows: create, edit,
// deactivate, hard delete and listing. Multi-record workflows here are
// not atomic; the partial-failure policy of each one is documented on
// the method.
type StaffService struct {
	store store.Store
	docs  *DocumentService
	log   *zap.SugaredLogger
	now   func() time.Time
}

func NewStaffService(st store.Store, docs *DocumentService, logger *zap.SugaredLogger) *StaffService {
	return &StaffService{store: st, docs: docs, log: logger, now: time.Now}
}

// StaffInput carries the fields of a new staff member.
type StaffInput struct {
	HouseholdID     string
	FullLegalName   string
	CommonlyKnownAs string
	StartingDate    time.Time
	LeavesAllocated int
	MonthlySalary   float64
	CurrencyCode    string
	AgreedDuties    string
}

func (in StaffInput) validate() error {
	switch {
	case in.HouseholdID == "":
		return store.NewValidationError("household is required")
	case in.FullLegalName == "":
		return store.NewValidationError("full legal name is required")
	case in.StartingDate.IsZero():
		return store.NewValidationError("starting date is required")
	case in.LeavesAllocated < 0:
		return store.NewValidationError("allocated leaves must not be negative")
	case in.MonthlySalary <= 0:
		return store.NewValidationError("monthly salary must be positive")
	case in.AgreedDuties == "":
		return store.NewValidationError("agreed duties are required")
	}
	return nil
}

// CreateStaff persists a new active staff member and then uploads the
// attached documents referencing the new record. At least one document
// is required. If the document upload fails after the staff record was
// saved, the staff record is NOT rolled back: the error carries the
// failed items so the caller can retry just those.
func (s *StaffService) CreateStaff(ctx context.Context, in StaffInput, docs []model.DocumentItem) (model.Staff, error) {
	if err := in.validate(); err != nil {
		return model.Staff{}, err
	}
	if len(docs) == 0 {
		return model.Staff{}, store.NewValidationError("at least one ID document is required")
	}

	staff := model.Staff{
		HouseholdRef:    store.Reference{RecordID: in.HouseholdID},
		FullLegalName:   in.FullLegalName,
		CommonlyKnownAs: in.CommonlyKnownAs,
		StartingDate:    in.StartingDate,
		LeavesAllocated: in.LeavesAllocated,
		MonthlySalary:   in.MonthlySalary,
		CurrencyCode:    in.CurrencyCode,
		AgreedDuties:    in.AgreedDuties,
		IsActive:        true,
	}
	if staff.CurrencyCode == "" {
		staff.CurrencyCode = model.DefaultCurrencyCode
	}

	rec, err := s.store.Create(ctx, model.RecordTypeStaff, staff.ToFields())
	if err != nil {
		return model.Staff{}, err
	}
	created := model.StaffFromRecord(rec)

	if err := s.docs.SaveDocuments(ctx, docs, created.ID); err != nil {
		return created, err
	}
	return created, nil
}

// StaffUpdate describes a field-level edit. Nil pointers leave the
// stored value unchanged; setting CommonlyKnownAs to the empty string
// or ClearLeavingDate clears the stored field explicitly.
type StaffUpdate struct {
	FullLegalName    *string
	CommonlyKnownAs  *string
	StartingDate     *time.Time
	LeavingDate      *time.Time
	ClearLeavingDate bool
	LeavesAllocated  *int
	MonthlySalary    *float64
	CurrencyCode     *string
	AgreedDuties     *string
	IsActive         *bool
}

func (u StaffUpdate) fields() map[string]any {
	fields := map[string]any{}
	if u.FullLegalName != nil {
		fields["fullLegalName"] = *u.FullLegalName
	}
	if u.CommonlyKnownAs != nil {
		if *u.CommonlyKnownAs == "" {
			fields["commonlyKnownAs"] = store.Unset
		} else {
			fields["commonlyKnownAs"] = *u.CommonlyKnownAs
		}
	}
	if u.StartingDate != nil {
		fields["startingDate"] = *u.StartingDate
	}
	if u.ClearLeavingDate {
		fields["leavingDate"] = store.Unset
	} else if u.LeavingDate != nil {
		fields["leavingDate"] = *u.LeavingDate
	}
	if u.LeavesAllocated != nil {
		fields["leavesAllocated"] = int64(*u.LeavesAllocated)
	}
	if u.MonthlySalary != nil {
		fields["monthlySalary"] = *u.MonthlySalary
	}
	if u.CurrencyCode != nil {
		fields["currencyCode"] = *u.CurrencyCode
	}
	if u.AgreedDuties != nil {
		fields["agreedDuties"] = *u.AgreedDuties
	}
	if u.IsActive != nil {
		fields["isActive"] = *u.IsActive
	}
	return fields
}

// GetStaff fetches and maps one staff member.
func (s *StaffService) GetStaff(ctx context.Context, id string) (model.Staff, error) {
	rec, err := s.store.Fetch(ctx, id)
	if err != nil {
		return model.Staff{}, err
	}
	return model.StaffFromRecord(rec), nil
}

// UpdateStaff applies a field-level edit, then deletes the documents
// marked for removal, then uploads the newly staged ones. The record is
// re-fetched first so fields outside the edit are not blindly
// overwritten. Deletes run before uploads so an upload failure cannot
// mask skipped deletes; a delete failure aborts before any upload.
func (s *StaffService) UpdateStaff(ctx context.Context, id string, upd StaffUpdate, removeDocIDs []string, newDocs []model.DocumentItem) (model.Staff, error) {
	rec, err := s.store.Fetch(ctx, id)
	if err != nil {
		return model.Staff{}, err
	}
	current := model.StaffFromRecord(rec)

	if fields := upd.fields(); len(fields) > 0 {
		if rec, err = s.store.Save(ctx, id, fields); err != nil {
			return current, err
		}
		current = model.StaffFromRecord(rec)
	}

	if err := s.docs.DeleteDocuments(ctx, removeDocIDs); err != nil {
		return current, err
	}
	if err := s.docs.SaveDocuments(ctx, newDocs, id); err != nil {
		return current, err
	}
	return s.GetStaff(ctx, id)
}

// Deactivate is the soft delete: it clears the active flag and stamps
// the leaving date with the call time unless one is already set.
// Calling it again is idempotent on the flag and never overwrites an
// existing leaving date. The staff member stays queryable and its
// documents stay intact.
func (s *StaffService) Deactivate(ctx context.Context, id string) (model.Staff, error) {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return model.Staff{}, err
	}
	fields := map[string]any{"isActive": false}
	if staff.LeavingDate == nil {
		fields["leavingDate"] = s.now()
	}
	rec, err := s.store.Save(ctx, id, fields)
	if err != nil {
		return staff, err
	}
	return model.StaffFromRecord(rec), nil
}

// DeleteStaff hard-deletes a staff member. Its documents are deleted
// first, best-effort: failures are logged and the staff record is
// deleted regardless, accepting the orphan risk.
func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	docs, err := s.docs.FetchDocuments(ctx, id)
	if err != nil {
		s.log.Warnw("listing documents before staff delete failed", "staff_id", id, "error", err)
	} else if len(docs) > 0 {
		ids := make([]string, 0, len(docs))
		for _, d := range docs {
			ids = append(ids, d.ID)
		}
		if err := s.docs.DeleteDocuments(ctx, ids); err != nil {
			s.log.Warnw("document cleanup failed during staff delete", "staff_id", id, "error", err)
		}
	}
	return s.store.Delete(ctx, id)
}

// ListStaff returns the household's staff sorted case-insensitively by
// full legal name. Inactive members are hidden unless includeInactive
// is set.
func (s *StaffService) ListStaff(ctx context.Context, householdID string, includeInactive bool) ([]model.Staff, error) {
	recs, err := s.store.QueryByReference(ctx, model.RecordTypeStaff, model.FieldHouseholdRef, householdID)
	if err != nil {
		return nil, err
	}
	list := make([]model.Staff, 0, len(recs))
	for _, rec := range recs {
		list = append(list, model.StaffFromRecord(rec))
	}
	list = model.FilterActive(list, includeInactive)
	model.SortStaffByName(list)
	return list, nil
}
