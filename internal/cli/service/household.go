package service

import (
	"HomeCrew/internal/cli/model"
	"HomeCrew/internal/cli/store"
	"context"

	"go.uber.org/zap"
)

// HouseholdService holds the household lifecycle workflows.
type HouseholdService struct {
	store store.Store
	docs  *DocumentService
	log   *zap.SugaredLogger
}

func NewHouseholdService(st store.Store, docs *DocumentService, logger *zap.SugaredLogger) *HouseholdService {
	return &HouseholdService{store: st, docs: docs, log: logger}
}

// CreateHousehold validates and persists a new household. Callers are
// expected to re-list afterwards; there is no optimistic local insert.
func (s *HouseholdService) CreateHousehold(ctx context.Context, name, address, notes string) (model.Household, error) {
	if name == "" {
		return model.Household{}, store.NewValidationError("household name is required")
	}
	if address == "" {
		return model.Household{}, store.NewValidationError("household address is required")
	}
	h := model.Household{Name: name, Address: address, Notes: notes}
	rec, err := s.store.Create(ctx, model.RecordTypeHousehold, h.ToFields())
	if err != nil {
		return model.Household{}, err
	}
	return model.HouseholdFromRecord(rec), nil
}

// UpdateHousehold saves the household's full field set.
func (s *HouseholdService) UpdateHousehold(ctx context.Context, h model.Household) (model.Household, error) {
	if h.Name == "" {
		return model.Household{}, store.NewValidationError("household name is required")
	}
	if h.Address == "" {
		return model.Household{}, store.NewValidationError("household address is required")
	}
	rec, err := s.store.Save(ctx, h.ID, h.ToFields())
	if err != nil {
		return model.Household{}, err
	}
	return model.HouseholdFromRecord(rec), nil
}

// GetHousehold fetches and maps one household.
func (s *HouseholdService) GetHousehold(ctx context.Context, id string) (model.Household, error) {
	rec, err := s.store.Fetch(ctx, id)
	if err != nil {
		return model.Household{}, err
	}
	return model.HouseholdFromRecord(rec), nil
}

// ListHouseholds returns all households sorted by name ascending.
func (s *HouseholdService) ListHouseholds(ctx context.Context) ([]model.Household, error) {
	recs, err := s.store.QueryByType(ctx, model.RecordTypeHousehold)
	if err != nil {
		return nil, err
	}
	list := make([]model.Household, 0, len(recs))
	for _, rec := range recs {
		list = append(list, model.HouseholdFromRecord(rec))
	}
	model.SortHouseholdsByName(list)
	return list, nil
}

// DeleteHousehold removes the single household record only. Dependent
// staff and documents are left in place; use DeleteHouseholdCascade to
// remove the whole subtree.
func (s *HouseholdService) DeleteHousehold(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// DeleteHouseholdCascade deletes the household and all its descendants,
// leaves first: each staff member's documents, then the staff member,
// then the household itself. The store has no cascade semantics, so
// partial failure is expected and tolerated: every id that could not be
// deleted is returned, and a non-nil error summarizes the causes. A
// staff member whose documents could not all be deleted is kept, and a
// household with remaining staff is kept, so the tree stays reachable
// for a retry.
func (s *HouseholdService) DeleteHouseholdCascade(ctx context.Context, id string) (remaining []string, err error) {
	staffRecs, err := s.store.QueryByReference(ctx, model.RecordTypeStaff, model.FieldHouseholdRef, id)
	if err != nil {
		return nil, err
	}

	var failures []store.BatchItemError
	for _, staffRec := range staffRecs {
		staffOK := true
		docs, err := s.docs.FetchDocuments(ctx, staffRec.ID)
		if err != nil {
			failures = append(failures, store.BatchItemError{Name: staffRec.ID, Err: err})
			remaining = append(remaining, staffRec.ID)
			continue
		}
		for _, d := range docs {
			if err := s.store.Delete(ctx, d.ID); err != nil {
				s.log.Warnw("cascade: document delete failed", "document_id", d.ID, "error", err)
				failures = append(failures, store.BatchItemError{Name: d.ID, Err: err})
				remaining = append(remaining, d.ID)
				staffOK = false
			}
		}
		if !staffOK {
			remaining = append(remaining, staffRec.ID)
			continue
		}
		if err := s.store.Delete(ctx, staffRec.ID); err != nil {
			s.log.Warnw("cascade: staff delete failed", "staff_id", staffRec.ID, "error", err)
			failures = append(failures, store.BatchItemError{Name: staffRec.ID, Err: err})
			remaining = append(remaining, staffRec.ID)
		}
	}

	if len(remaining) > 0 {
		remaining = append(remaining, id)
		return remaining, &store.BatchError{Items: failures}
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return []string{id}, err
	}
	return nil, nil
}
