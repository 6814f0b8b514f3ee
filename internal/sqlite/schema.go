// Package sqlite implements the SQLite reading-corpus backend. JSONL
// files are the source of truth; SQLite is the query engine rebuilt from
// them on every attach. See docs/ARCHITECTURE.md § Storage.
package sqlite

// Schema DDL. The readings table mirrors the mixed corpus: the
// base/position/value columns are nullable because most records carry
// their attributes only inside the heading text.
const (
	createReadings = `CREATE TABLE readings (
    reading_id TEXT PRIMARY KEY,
    heading TEXT NOT NULL,
    body TEXT NOT NULL,
    base INTEGER,
    position INTEGER,
    value INTEGER,
    category TEXT
);`

	createReadingsCategoryIndex = `CREATE INDEX idx_readings_category
    ON readings(category);`

	createReadingsBasePositionIndex = `CREATE INDEX idx_readings_base_position
    ON readings(base, position);`

	createCategories = `CREATE TABLE categories (
    category_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    meaning TEXT NOT NULL,
    house_type TEXT NOT NULL,
    base INTEGER NOT NULL,
    position INTEGER NOT NULL
);`
)

// schemaStatements lists the DDL executed on attach, in order.
var schemaStatements = []string{
	createReadings,
	createReadingsCategoryIndex,
	createReadingsBasePositionIndex,
	createCategories,
}
