package handlers

import (
	"HomeCrew/internal/middleware"
	"HomeCrew/internal/model"
	"HomeCrew/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordHandler serves record CRUD and the query endpoint.
type RecordHandler struct {
	RecordService *service.RecordService
	Logger        *zap.SugaredLogger
}

func NewRecordHandler(recordService *service.RecordService, logger *zap.SugaredLogger) *RecordHandler {
	return &RecordHandler{RecordService: recordService, Logger: logger}
}

type createRecordRequest struct {
	Type   string                     `json:"type"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type updateRecordRequest struct {
	Fields map[string]json.RawMessage `json:"fields"`
}

type queryRecordsRequest struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Ref   string `json:"ref,omitempty"`
}

type recordDTO struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Fields json.RawMessage `json:"fields"`
}

func toRecordDTO(rec *model.Record) recordDTO {
	fields := rec.Fields
	if len(fields) == 0 {
		fields = []byte("{}")
	}
	return recordDTO{ID: rec.ID, Type: rec.Type, Fields: fields}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Create stores a new record.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Type == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Fields == nil {
		req.Fields = map[string]json.RawMessage{}
	}
	rec, err := h.RecordService.Create(r.Context(), userID, req.Type, req.Fields)
	if err != nil {
		h.Logger.Errorw("Create record: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordDTO(rec))
}

// Get returns one record by id.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	rec, err := h.RecordService.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Get record: service error", "user_id", userID, "record_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTO(rec))
}

// Update merges fields into an existing record.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	rec, err := h.RecordService.Update(r.Context(), userID, id, req.Fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Update record: service error", "user_id", userID, "record_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTO(rec))
}

// Delete removes one record by id.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.RecordService.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Delete record: service error", "user_id", userID, "record_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Query lists records of one type, optionally filtered by a reference
// field.
func (h *RecordHandler) Query(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req queryRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Type == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	recs, err := h.RecordService.Query(r.Context(), userID, req.Type, req.Field, req.Ref)
	if err != nil {
		h.Logger.Errorw("Query records: service error", "user_id", userID, "type", req.Type, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	dtos := make([]recordDTO, 0, len(recs))
	for i := range recs {
		dtos = append(dtos, toRecordDTO(&recs[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": dtos})
}
