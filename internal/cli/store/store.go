package store

import "context"

// Store is the record store boundary the client services talk to.
// Every call is an independent network operation and errors on its own;
// multi-record workflows built on top of it are not atomic.
type Store interface {
	// Create persists a new record of the given type and returns it
	// with its store-assigned ID.
	Create(ctx context.Context, recordType string, fields map[string]any) (Record, error)

	// Fetch returns the record with the given ID, or NotFoundError.
	Fetch(ctx context.Context, id string) (Record, error)

	// Save applies a field-level update to an existing record. A key
	// mapped to Unset clears the stored field; an absent key leaves the
	// stored value unchanged. Returns the updated record.
	Save(ctx context.Context, id string, fields map[string]any) (Record, error)

	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id string) error

	// QueryByType returns all records of a type.
	QueryByType(ctx context.Context, recordType string) ([]Record, error)

	// QueryByReference returns the records of a type whose field holds
	// a reference to the given record ID. Child lookup always goes
	// through this, never through a stored child list.
	QueryByReference(ctx context.Context, recordType, field, recordID string) ([]Record, error)
}
