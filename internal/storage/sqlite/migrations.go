package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure tables exist.
// AUTOINCREMENT keeps model IDs monotonic even if deletion is ever added;
// deliberately not the "collection length + 1" scheme, which breaks the
// moment a row can disappear.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    role TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS model_registry (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    version TEXT NOT NULL,
    artifact_url TEXT NOT NULL,
    status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pipelines (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    status TEXT NOT NULL
);
`

// seeds inserts the fixed user and pipeline rows. INSERT OR IGNORE keeps the
// statements idempotent for file-backed databases that already ran them.
const seeds = `
INSERT OR IGNORE INTO users (id, name, role) VALUES
    (1, 'Alice', 'admin'),
    (2, 'Bob', 'data-scientist');

INSERT OR IGNORE INTO pipelines (id, name, status) VALUES
    (1, 'daily-churn-pipeline', 'ready'),
    (2, 'fraud-detection-pipeline', 'paused');
`

// runMigrations executes the schema setup and seed data.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	_, err := db.Exec(seeds)
	return err
}
