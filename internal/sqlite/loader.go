// This file implements JSONL corpus loading on attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// readingRecordJSON is the JSONL shape of one corpus record. Pointer
// fields capture the nullable structured attributes; unknown fields are
// ignored for forward compatibility.
type readingRecordJSON struct {
	ReadingID string `json:"reading_id"`
	Heading   string `json:"heading"`
	Body      string `json:"body"`
	Base      *int   `json:"base"`
	Position  *int   `json:"position"`
	Value     *int   `json:"value"`
	Category  string `json:"category"`
}

// loadReadings reads the JSONL corpus and inserts records into the
// readings table. Loading is transactional: all rows load or the table
// stays empty. Records without an ID get a generated UUID v7; records
// without a heading are skipped. Returns the number of rows loaded.
func loadReadings(db *sql.DB, path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO readings (reading_id, heading, body, base, position, value, category) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for _, raw := range records {
		var rec readingRecordJSON
		if err := json.Unmarshal(raw, &rec); err != nil {
			// Valid JSON of the wrong shape; skip like a malformed line.
			continue
		}
		if rec.Heading == "" {
			continue
		}
		if rec.ReadingID == "" {
			rec.ReadingID = generateUUID()
		}
		if _, err := stmt.Exec(
			rec.ReadingID, rec.Heading, rec.Body,
			nullableInt(rec.Base), nullableInt(rec.Position), nullableInt(rec.Value),
			nullableString(rec.Category),
		); err != nil {
			return 0, fmt.Errorf("inserting reading %s: %w", rec.ReadingID, err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}

// nullableInt converts an optional JSON integer to a driver value.
func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// nullableString converts an empty string to NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
