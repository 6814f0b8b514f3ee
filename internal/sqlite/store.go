package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/horasat/pkg/types"
)

// readingsFile is the JSONL corpus file inside DataDir.
const readingsFile = "readings.jsonl"

// dbFile is the SQLite database rebuilt from the JSONL corpus on attach.
const dbFile = "readings.db"

var _ types.ReadingStore = (*Store)(nil)

// Store implements the ReadingStore interface over SQLite. The corpus
// lives in readings.jsonl; Attach rebuilds the database from it, so the
// database file is disposable.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *zap.Logger
}

// NewStore creates an unattached Store. A nil logger is replaced with a
// no-op logger. Call Attach with a Config to initialize.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{log: log}
}

// Attach creates the data directory if needed, rebuilds the SQLite
// schema, seeds the house categories, and loads the JSONL corpus.
// Returns ErrAlreadyAttached if called while attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The JSONL corpus is the source of truth; start the query engine
	// from a clean file every attach.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := ensureReadingsFile(dataDir); err != nil {
		db.Close()
		return err
	}

	if err := seedCategories(db); err != nil {
		db.Close()
		return fmt.Errorf("seeding categories: %w", err)
	}

	loaded, err := loadReadings(db, filepath.Join(dataDir, readingsFile))
	if err != nil {
		db.Close()
		return fmt.Errorf("loading corpus: %w", err)
	}

	s.db = db
	s.config = config
	s.attached = true

	s.log.Info("corpus attached",
		zap.String("data_dir", dataDir),
		zap.Int("readings", loaded))

	return nil
}

// Detach closes the database. Idempotent: multiple calls succeed. After
// Detach, queries return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// ensureReadingsFile creates an empty corpus file when none exists, so a
// fresh data directory attaches cleanly.
func ensureReadingsFile(dataDir string) error {
	path := filepath.Join(dataDir, readingsFile)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat corpus file: %w", err)
	}
	return os.WriteFile(path, nil, 0o644)
}

// generateUUID generates a UUID v7 for reading IDs, falling back to v4
// if v7 generation fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
