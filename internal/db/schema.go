package db

import "database/sql"

// SchemaVersion is recorded in schema_version once SchemaSQL is applied.
const SchemaVersion = 1

// SchemaSQL is the complete schema for circle installs.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository tests
// load it through GetSchemaSQL() instead of declaring their own tables, so a
// repository that references a missing column fails with "no such column".
const SchemaSQL = `
-- Emergency contacts notified when an alert goes active
CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT NOT NULL UNIQUE,
	relation TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Notifications (toast history, one row per delivered toast)
CREATE TABLE IF NOT EXISTS notifications (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	variant TEXT NOT NULL CHECK(variant IN ('default', 'destructive')) DEFAULT 'default',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notifications_session ON notifications(session_id);
CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at);

-- Contact alerts (outbox queued on activation; delivery happens elsewhere)
CREATE TABLE IF NOT EXISTS contact_alerts (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	contact_id TEXT NOT NULL,
	message TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('pending', 'sent', 'failed')) DEFAULT 'pending',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_contact_alerts_status ON contact_alerts(status);
CREATE INDEX IF NOT EXISTS idx_contact_alerts_session ON contact_alerts(session_id);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the database schema on conn. Safe to run on every open.
func InitSchema(conn *sql.DB) error {
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	_, err := conn.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion)
	return err
}

// CurrentVersion returns the highest applied schema version, or 0.
func CurrentVersion(conn *sql.DB) (int, error) {
	var version int
	err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	return version, err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
