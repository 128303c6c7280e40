package service

import (
	"HomeCrew/internal/model"
	"HomeCrew/internal/repo"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssetService stores uploaded asset bytes on disk and their metadata
// in the database. Files live under <dataDir>/assets/<id>.
type AssetService struct {
	assets  repo.AssetRepository
	dataDir string
	logger  *zap.SugaredLogger
}

func NewAssetService(assets repo.AssetRepository, dataDir string, logger *zap.SugaredLogger) *AssetService {
	return &AssetService{assets: assets, dataDir: dataDir, logger: logger}
}

// Save writes the uploaded bytes to disk first and registers the row
// only after the write succeeded, so a row never points at a missing
// file. A failed row insert removes the file again.
func (s *AssetService) Save(ctx context.Context, userID int64, name string, src io.Reader) (*model.Asset, error) {
	dir := filepath.Join(s.dataDir, "assets")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	path := filepath.Join(dir, id)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, err
	}
	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("writing asset file: %w", err)
	}

	asset := &model.Asset{ID: id, UserID: userID, Name: name, Size: size, Path: path}
	if err := s.assets.Create(ctx, asset); err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return asset, nil
}

// Open returns the asset metadata and an open reader over its bytes.
func (s *AssetService) Open(ctx context.Context, userID int64, id string) (*model.Asset, io.ReadCloser, error) {
	asset, err := s.assets.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(asset.Path)
	if err != nil {
		s.logger.Errorw("asset row exists but file is missing", "asset_id", id, "path", asset.Path, "error", err)
		return nil, nil, err
	}
	return asset, f, nil
}
