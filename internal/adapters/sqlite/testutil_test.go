// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/circle/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection to :memory: is a separate database
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedContact inserts a test contact and returns its ID.
func seedContact(t *testing.T, db *sql.DB, id, name, phone string) string {
	t.Helper()
	if id == "" {
		id = "CON-001"
	}
	if name == "" {
		name = "Test Contact"
	}
	if phone == "" {
		phone = "+15550100"
	}
	_, err := db.Exec("INSERT INTO contacts (id, name, phone) VALUES (?, ?, ?)", id, name, phone)
	if err != nil {
		t.Fatalf("failed to seed contact: %v", err)
	}
	return id
}

// seedNotification inserts a notification with an explicit timestamp.
func seedNotification(t *testing.T, db *sql.DB, id, sessionID, kind, createdAt string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO notifications (id, session_id, kind, title, created_at) VALUES (?, ?, ?, ?, ?)",
		id, sessionID, kind, "Title "+id, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed notification: %v", err)
	}
}
