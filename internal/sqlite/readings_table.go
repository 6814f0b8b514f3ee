// This file implements the readings query accessors.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/horasat/pkg/types"
)

// selectReadings is the shared column list for hydration.
const selectReadings = "SELECT reading_id, heading, body, base, position, value, category FROM readings"

// GetAll returns every reading in the corpus, ordered by ID for
// deterministic iteration.
func (s *Store) GetAll() ([]types.ReadingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(selectReadings + " ORDER BY reading_id")
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()
	return hydrateReadings(rows)
}

// GetByCategory returns readings tagged with the given house label.
func (s *Store) GetByCategory(label string) ([]types.ReadingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(selectReadings+" WHERE category = ? ORDER BY reading_id", label)
	if err != nil {
		return nil, fmt.Errorf("querying readings by category %q: %w", label, err)
	}
	defer rows.Close()
	return hydrateReadings(rows)
}

// GetByBaseAndPosition returns readings whose structured base and
// position columns match the given pair.
func (s *Store) GetByBaseAndPosition(base, position int) ([]types.ReadingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(
		selectReadings+" WHERE base = ? AND position = ? ORDER BY reading_id",
		base, position,
	)
	if err != nil {
		return nil, fmt.Errorf("querying readings by base %d position %d: %w", base, position, err)
	}
	defer rows.Close()
	return hydrateReadings(rows)
}

// hydrateReadings scans query rows into reading records, converting the
// nullable attribute columns into optional fields.
func hydrateReadings(rows *sql.Rows) ([]types.ReadingRecord, error) {
	var out []types.ReadingRecord
	for rows.Next() {
		var (
			rec                   types.ReadingRecord
			base, position, value sql.NullInt64
			category              sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Heading, &rec.Body, &base, &position, &value, &category); err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}
		rec.Base = optionalFromNull(base)
		rec.Position = optionalFromNull(position)
		rec.Value = optionalFromNull(value)
		rec.Category = category.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating readings: %w", err)
	}
	return out, nil
}

// optionalFromNull converts a nullable column into an OptionalInt.
func optionalFromNull(v sql.NullInt64) types.OptionalInt {
	if !v.Valid {
		return types.OptionalInt{}
	}
	return types.SomeInt(int(v.Int64))
}
