package sqlite

import (
	"HomeCrew/internal/cli/repo"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// StagingRepositorySQLite keeps the staging index in a local SQLite
// file next to the staged copies.
type StagingRepositorySQLite struct {
	db    *sql.DB
	files string // directory holding the staged copies
}

var _ repo.StagingRepository = (*StagingRepositorySQLite)(nil)

// Open opens (and creates if needed) the staging area under baseDir.
func Open(baseDir string) (*StagingRepositorySQLite, error) {
	if baseDir == "" {
		return nil, errors.New("empty staging directory")
	}
	files := filepath.Join(baseDir, "staged")
	if err := os.MkdirAll(files, 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(baseDir, "staging.sqlite"))
	if err != nil {
		return nil, err
	}
	return &StagingRepositorySQLite{db: db, files: files}, nil
}

// Close closes the underlying DB.
func (r *StagingRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate ensures the single required table exists.
func (r *StagingRepositorySQLite) Migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS staged_documents (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  path TEXT NOT NULL,
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_staged_created_at ON staged_documents(created_at);
`
	_, err := r.db.Exec(ddl)
	return err
}

// Stage copies srcPath into the staging directory under a random name
// (keeping the extension) and records it under the given display name.
func (r *StagingRepositorySQLite) Stage(srcPath, name string) (repo.StagedDocument, error) {
	if name == "" {
		return repo.StagedDocument{}, errors.New("name is required")
	}
	src, err := os.Open(srcPath)
	if err != nil {
		return repo.StagedDocument{}, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	id := uuid.NewString()
	dstPath := filepath.Join(r.files, id+filepath.Ext(srcPath))
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return repo.StagedDocument{}, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		return repo.StagedDocument{}, err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return repo.StagedDocument{}, err
	}

	doc := repo.StagedDocument{ID: id, Name: name, Path: dstPath, CreatedAt: time.Now().Unix()}
	_, err = r.db.Exec(`INSERT INTO staged_documents(id, name, path, created_at) VALUES(?, ?, ?, ?)`,
		doc.ID, doc.Name, doc.Path, doc.CreatedAt)
	if err != nil {
		_ = os.Remove(dstPath)
		return repo.StagedDocument{}, err
	}
	return doc, nil
}

// List returns all staged documents, oldest first.
func (r *StagingRepositorySQLite) List() ([]repo.StagedDocument, error) {
	rows, err := r.db.Query(`SELECT id, name, path, created_at FROM staged_documents ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []repo.StagedDocument
	for rows.Next() {
		var d repo.StagedDocument
		if err := rows.Scan(&d.ID, &d.Name, &d.Path, &d.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

// Remove drops one staged document and its file copy.
func (r *StagingRepositorySQLite) Remove(id string) error {
	var path string
	err := r.db.QueryRow(`SELECT path FROM staged_documents WHERE id = ?`, id).Scan(&path)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("staged document %q not found", id)
		}
		return err
	}
	if _, err := r.db.Exec(`DELETE FROM staged_documents WHERE id = ?`, id); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Clear drops every staged document and its file copy.
func (r *StagingRepositorySQLite) Clear() error {
	docs, err := r.List()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(`DELETE FROM staged_documents`); err != nil {
		return err
	}
	for _, d := range docs {
		if err := os.Remove(d.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
