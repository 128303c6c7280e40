package handlers

import (
	"HomeCrew/internal/config"
	"HomeCrew/internal/middleware"
	"HomeCrew/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AssetHandler serves binary asset upload and download.
type AssetHandler struct {
	AssetService *service.AssetService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

func NewAssetHandler(assetService *service.AssetService, logger *zap.SugaredLogger, cfg *config.Config) *AssetHandler {
	return &AssetHandler{AssetService: assetService, Logger: logger, Config: cfg}
}

// Upload accepts one multipart file under "file" with a display name
// under "name". Uploads over the configured size limit are rejected.
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	maxBody := int64(h.Config.AssetMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("Upload: missing file", "error", err)
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	maxSize := int64(h.Config.AssetMaxSizeMB) * 1024 * 1024
	if header.Size > maxSize {
		h.Logger.Warnw("Upload: payload too large", "name", name, "size", header.Size, "limit", maxSize)
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	asset, err := h.AssetService.Save(r.Context(), userID, name, io.LimitReader(file, maxSize))
	if err != nil {
		h.Logger.Errorw("Upload: service error", "user_id", userID, "name", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":   asset.ID,
		"size": asset.Size,
	})
}

// Download streams the asset bytes back.
func (h *AssetHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")
	asset, src, err := h.AssetService.Open(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Download: service error", "user_id", userID, "asset_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer src.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.Name))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, src); err != nil {
		h.Logger.Warnw("Download: streaming failed", "asset_id", id, "error", err)
	}
}
