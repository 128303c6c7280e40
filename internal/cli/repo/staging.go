package repo

// StagedDocument is one picked file waiting in the local staging area.
type StagedDocument struct {
	ID        string
	Name      string // display name
	Path      string // staged copy, not the original location
	CreatedAt int64
}

// StagingRepository is the local store for documents picked for upload.
// Staged copies live under random filenames in a process-wide staging
// directory; the index rows live in SQLite.
type StagingRepository interface {
	// Stage copies the source file into the staging area under a random
	// name and records it.
	Stage(srcPath, name string) (StagedDocument, error)

	// List returns all staged documents, oldest first.
	List() ([]StagedDocument, error)

	// Remove drops one staged document and its file copy.
	Remove(id string) error

	// Clear drops every staged document. Called after a successful
	// upload batch.
	Clear() error
}
