package service

import (
	"HomeCrew/internal/cli/store"
	"context"
	"fmt"
	"sync"
)

// fakeStore is an in-memory store.Store for service tests. Field values
// stay in their in-memory form; the wire codec is covered by the store
// package tests. Failures are injected per record id or per document
// name.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]store.Record
	nextID  int

	createCalls int
	saveCalls   int
	deleteCalls int

	failCreateByName map[string]error // keyed by the "name" field value
	failFetch        map[string]error
	failSave         map[string]error
	failDelete       map[string]error
}

var _ store.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:          map[string]store.Record{},
		failCreateByName: map[string]error{},
		failFetch:        map[string]error{},
		failSave:         map[string]error{},
		failDelete:       map[string]error{},
	}
}

func (f *fakeStore) seed(rec store.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[rec.ID] = rec
}

func (f *fakeStore) get(id string) (store.Record, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	return rec, ok
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func (f *fakeStore) Create(ctx context.Context, recordType string, fields map[string]any) (store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if name, ok := fields["name"].(string); ok {
		if err := f.failCreateByName[name]; err != nil {
			return store.Record{}, err
		}
	}
	f.nextID++
	rec := store.Record{
		ID:     fmt.Sprintf("rec-%d", f.nextID),
		Type:   recordType,
		Fields: copyFields(fields),
	}
	for k, v := range rec.Fields {
		if v == store.Unset {
			delete(rec.Fields, k)
		}
	}
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeStore) Fetch(ctx context.Context, id string) (store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFetch[id]; err != nil {
		return store.Record{}, err
	}
	rec, ok := f.records[id]
	if !ok {
		return store.Record{}, &store.NotFoundError{ID: id}
	}
	return store.Record{ID: rec.ID, Type: rec.Type, Fields: copyFields(rec.Fields)}, nil
}

func (f *fakeStore) Save(ctx context.Context, id string, fields map[string]any) (store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if err := f.failSave[id]; err != nil {
		return store.Record{}, err
	}
	rec, ok := f.records[id]
	if !ok {
		return store.Record{}, &store.NotFoundError{ID: id}
	}
	merged := copyFields(rec.Fields)
	for k, v := range fields {
		if v == store.Unset {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	rec.Fields = merged
	f.records[id] = rec
	return store.Record{ID: rec.ID, Type: rec.Type, Fields: copyFields(merged)}, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if err := f.failDelete[id]; err != nil {
		return err
	}
	if _, ok := f.records[id]; !ok {
		return &store.NotFoundError{ID: id}
	}
	delete(f.records, id)
	return nil
}

func (f *fakeStore) QueryByType(ctx context.Context, recordType string) ([]store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Record
	for _, rec := range f.records {
		if rec.Type == recordType {
			out = append(out, store.Record{ID: rec.ID, Type: rec.Type, Fields: copyFields(rec.Fields)})
		}
	}
	return out, nil
}

func (f *fakeStore) QueryByReference(ctx context.Context, recordType, field, recordID string) ([]store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Record
	for _, rec := range f.records {
		if rec.Type != recordType {
			continue
		}
		if ref, ok := rec.Fields[field].(store.Reference); ok && ref.RecordID == recordID {
			out = append(out, store.Record{ID: rec.ID, Type: rec.Type, Fields: copyFields(rec.Fields)})
		}
	}
	return out, nil
}
