// This file implements house-category seeding on attach.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/horasat/internal/chart"
	"github.com/mesh-intelligence/horasat/pkg/types"
)

// HouseCategory is one seeded category row: a house label with its
// chart coordinates and metadata.
type HouseCategory struct {
	ID        string `json:"category_id"`
	Name      string `json:"name"`
	Meaning   string `json:"meaning"`
	HouseType string `json:"house_type"`
	Base      int    `json:"base"`
	Position  int    `json:"position"`
}

// seedCategories inserts the 21 house labels of bases 1-3 with their
// meanings and house types. The categories table is rebuilt on every
// attach together with the rest of the schema.
func seedCategories(db *sql.DB) error {
	tables := chart.NewTables()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO categories (category_id, name, meaning, house_type, base, position) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for base := types.BaseDay; base <= types.BaseYear; base++ {
		for position := 1; position <= types.PositionCount; position++ {
			label, err := tables.LabelFor(base, position)
			if err != nil {
				return err
			}
			if _, err := stmt.Exec(
				generateUUID(), label,
				tables.MeaningFor(label), tables.HouseTypeFor(label),
				base, position,
			); err != nil {
				return fmt.Errorf("seeding category %q: %w", label, err)
			}
		}
	}

	return tx.Commit()
}

// Categories returns the seeded house categories ordered by base and
// position.
func (s *Store) Categories() ([]HouseCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(
		"SELECT category_id, name, meaning, house_type, base, position FROM categories ORDER BY base, position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var out []HouseCategory
	for rows.Next() {
		var c HouseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Meaning, &c.HouseType, &c.Base, &c.Position); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return out, nil
}
