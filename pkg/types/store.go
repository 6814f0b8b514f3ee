package types

import "errors"

// ReadingStore defines backend-agnostic, read-only access to the reading
// corpus. Callers attach to a backend, query readings, and detach when
// done. Retry policy and timeouts belong to the layer that owns the
// backing storage, not to callers of this interface.
type ReadingStore interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, queries return ErrStoreDetached.
	Detach() error

	// GetAll returns every reading in the corpus.
	GetAll() ([]ReadingRecord, error)

	// GetByCategory returns readings tagged with the given house label.
	GetByCategory(label string) ([]ReadingRecord, error)

	// GetByBaseAndPosition returns readings whose structured base and
	// position columns match the given pair.
	GetByBaseAndPosition(base, position int) ([]ReadingRecord, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("reading store is detached")
	ErrAlreadyAttached = errors.New("reading store is already attached")
)
