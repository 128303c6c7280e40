package service

import (
	"HomeCrew/internal/model"
	"HomeCrew/internal/repo"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordService implements the record store semantics over the
// repository: create strips null fields, update merges field-by-field
// with null meaning delete, and reference queries filter on the wire
// encoding of a single reference field.
type RecordService struct {
	records repo.RecordRepository
	logger  *zap.SugaredLogger
}

func NewRecordService(records repo.RecordRepository, logger *zap.SugaredLogger) *RecordService {
	return &RecordService{records: records, logger: logger}
}

// Create stores a new record under a fresh id. Fields that arrive as
// JSON null are dropped: a record never stores an explicit null.
func (s *RecordService) Create(ctx context.Context, userID int64, recordType string, fields map[string]json.RawMessage) (*model.Record, error) {
	stripNulls(fields)
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	rec := &model.Record{
		ID:     uuid.NewString(),
		UserID: userID,
		Type:   recordType,
		Fields: raw,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecordService) Get(ctx context.Context, userID int64, id string) (*model.Record, error) {
	return s.records.GetByID(ctx, userID, id)
}

// Update merges the incoming fields into the stored ones: a null value
// deletes the field, an absent key keeps the stored value.
func (s *RecordService) Update(ctx context.Context, userID int64, id string, fields map[string]json.RawMessage) (*model.Record, error) {
	rec, err := s.records.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	stored := map[string]json.RawMessage{}
	if len(rec.Fields) > 0 {
		if err := json.Unmarshal(rec.Fields, &stored); err != nil {
			return nil, fmt.Errorf("stored fields of %s are corrupt: %w", id, err)
		}
	}
	for k, v := range fields {
		if isJSONNull(v) {
			delete(stored, k)
			continue
		}
		stored[k] = v
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	if err := s.records.Update(ctx, userID, id, raw); err != nil {
		return nil, err
	}
	rec.Fields = raw
	return rec, nil
}

func (s *RecordService) Delete(ctx context.Context, userID int64, id string) error {
	return s.records.Delete(ctx, userID, id)
}

// Query returns the user's records of one type. When field and ref are
// set, only records whose named field is a reference to ref are kept.
// Reference filtering happens here rather than in SQL because the field
// map is stored as opaque JSON.
func (s *RecordService) Query(ctx context.Context, userID int64, recordType, field, ref string) ([]model.Record, error) {
	recs, err := s.records.ListByType(ctx, userID, recordType)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return recs, nil
	}

	matched := make([]model.Record, 0, len(recs))
	for _, rec := range recs {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rec.Fields, &fields); err != nil {
			s.logger.Warnw("skipping record with corrupt fields", "record_id", rec.ID, "error", err)
			continue
		}
		raw, ok := fields[field]
		if !ok {
			continue
		}
		var refVal struct {
			Ref string `json:"__ref"`
		}
		if err := json.Unmarshal(raw, &refVal); err != nil {
			continue
		}
		if refVal.Ref == ref {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func stripNulls(fields map[string]json.RawMessage) {
	for k, v := range fields {
		if isJSONNull(v) {
			delete(fields, k)
		}
	}
}

func isJSONNull(v json.RawMessage) bool {
	return len(v) == 0 || string(v) == "null"
}
