package service

import (
	"HomeCrew/internal/cli/model"
	"HomeCrew/internal/cli/store"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DocumentService orchestrates the multi-record save/delete/query
// workflows for staff ID documents. Batches are best-effort: per-item
// failures never abort siblings, and every failure is reported with its
// item identity and cause. No retry happens at this layer.
type DocumentService struct {
	store store.Store
}

func NewDocumentService(st store.Store) *DocumentService {
	return &DocumentService{store: st}
}

// FetchDocuments returns the documents referencing the given staff
// record, sorted by name ascending regardless of store order. An empty
// result is a valid success.
func (s *DocumentService) FetchDocuments(ctx context.Context, staffID string) ([]model.StaffDocument, error) {
	recs, err := s.store.QueryByReference(ctx, model.RecordTypeStaffDocument, model.FieldStaffRef, staffID)
	if err != nil {
		return nil, err
	}
	docs := make([]model.StaffDocument, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, model.StaffDocumentFromRecord(rec))
	}
	model.SortDocumentsByName(docs)
	return docs, nil
}

// SaveDocuments uploads the staged items as StaffDocument records
// owned by staffID.
//
// Every item's backing file is checked synchronously first; any failing
// item aborts the whole batch with a ValidationError before the network
// is touched. The owning staff record's existence is then verified,
// because the store does not enforce referential integrity. Uploads run
// as an unordered independent batch joined by a single barrier; if at
// least one succeeded, the new references are appended to the staff
// record's existing reference list (never replacing entries added by
// concurrent operations).
func (s *DocumentService) SaveDocuments(ctx context.Context, items []model.DocumentItem, staffID string) error {
	if len(items) == 0 {
		return nil
	}

	for _, it := range items {
		if err := checkReadable(it.Path); err != nil {
			return store.NewValidationError("document %q: %v", it.Name, err)
		}
	}

	if _, err := s.store.Fetch(ctx, staffID); err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  []store.Reference
		failures []store.BatchItemError
	)
	for _, it := range items {
		wg.Add(1)
		go func(it model.DocumentItem) {
			defer wg.Done()
			rec, err := s.store.Create(ctx, model.RecordTypeStaffDocument, map[string]any{
				model.FieldStaffRef: store.Reference{RecordID: staffID},
				"name":              it.Name,
				"document":          store.Asset{Name: filepath.Base(it.Path), Path: it.Path},
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, store.BatchItemError{Name: it.Name, Err: err})
				return
			}
			created = append(created, store.Reference{RecordID: rec.ID})
		}(it)
	}
	wg.Wait()

	if len(created) > 0 {
		if err := s.appendDocumentRefs(ctx, staffID, created); err != nil {
			if len(failures) == 0 {
				return err
			}
			failures = append(failures, store.BatchItemError{Name: "staff reference update", Err: err})
		}
	}

	if len(failures) > 0 {
		return &store.BatchError{Items: failures}
	}
	return nil
}

// DeleteDocuments removes the given document records as a parallel
// independent batch. An empty input is a no-op success.
func (s *DocumentService) DeleteDocuments(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []store.BatchItemError
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.store.Delete(ctx, id); err != nil {
				mu.Lock()
				failures = append(failures, store.BatchItemError{Name: id, Err: err})
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
	if len(failures) > 0 {
		return &store.BatchError{Items: failures}
	}
	return nil
}

// CheckDocumentConsistency compares the staff record's denormalized
// idCards list against the authoritative reverse query. It returns the
// document ids present in the query but missing from the list, and the
// ids listed but absent from the query.
func (s *DocumentService) CheckDocumentConsistency(ctx context.Context, staffID string) (missingFromList, missingFromQuery []string, err error) {
	rec, err := s.store.Fetch(ctx, staffID)
	if err != nil {
		return nil, nil, err
	}
	listed := make(map[string]bool)
	for _, ref := range rec.ReferenceList(model.FieldIDCards) {
		listed[ref.RecordID] = true
	}
	docs, err := s.FetchDocuments(ctx, staffID)
	if err != nil {
		return nil, nil, err
	}
	queried := make(map[string]bool, len(docs))
	for _, d := range docs {
		queried[d.ID] = true
		if !listed[d.ID] {
			missingFromList = append(missingFromList, d.ID)
		}
	}
	for id := range listed {
		if !queried[id] {
			missingFromQuery = append(missingFromQuery, id)
		}
	}
	return missingFromList, missingFromQuery, nil
}

// appendDocumentRefs re-reads the staff record and writes back its
// reference list with the new references appended.
func (s *DocumentService) appendDocumentRefs(ctx context.Context, staffID string, refs []store.Reference) error {
	rec, err := s.store.Fetch(ctx, staffID)
	if err != nil {
		return err
	}
	merged := append(rec.ReferenceList(model.FieldIDCards), refs...)
	_, err = s.store.Save(ctx, staffID, map[string]any{model.FieldIDCards: merged})
	return err
}

func checkReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file not readable: %w", err)
	}
	return f.Close()
}
