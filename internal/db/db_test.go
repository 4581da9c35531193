package db

import (
	"path/filepath"
	"testing"

	"github.com/example/circle/internal/config"
)

func TestOpen_AppliesSchema(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "circle.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"contacts", "notifications", "contact_alerts", "schema_version"} {
		var count int
		err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&count)
		if err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if count != 1 {
			t.Errorf("table %s missing", table)
		}
	}

	version, err := CurrentVersion(conn)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("expected schema version %d, got %d", SchemaVersion, version)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circle.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if _, err := first.Exec("INSERT INTO contacts (id, name, phone) VALUES ('CON-001', 'Asha', '+15550100')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer second.Close()

	var count int
	second.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count)
	if count != 1 {
		t.Errorf("expected contact to survive reopen, got %d rows", count)
	}
}

func TestGetDBPath_UsesCircleHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)

	path, err := GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath failed: %v", err)
	}
	if path != filepath.Join(dir, "circle.db") {
		t.Errorf("unexpected path %s", path)
	}
}
