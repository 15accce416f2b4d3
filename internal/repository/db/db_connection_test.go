package db

import (
	"path/filepath"
	"testing"
	"time"
)

func TestInitDB_CreatesSignalTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.db")

	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(
		`INSERT INTO signal_state (id, green, yellow, red, status, updated_at) VALUES (1, 1, 0, 0, 'OPTIMAL', ?)`,
		time.Now().UTC(),
	); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var status string
	if err := conn.QueryRow(`SELECT status FROM signal_state WHERE id = 1`).Scan(&status); err != nil {
		t.Fatalf("select: %v", err)
	}
	if status != "OPTIMAL" {
		t.Fatalf("status = %q", status)
	}
}

func TestInitDB_RejectsSecondRowAndMultipleLEDs(t *testing.T) {
	conn, err := InitDB(filepath.Join(t.TempDir(), "signal.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	now := time.Now().UTC()
	if _, err := conn.Exec(
		`INSERT INTO signal_state (id, green, yellow, red, status, updated_at) VALUES (2, 0, 0, 0, 'UNKNOWN', ?)`, now,
	); err == nil {
		t.Fatalf("expected id CHECK to reject row 2")
	}
	if _, err := conn.Exec(
		`INSERT INTO signal_state (id, green, yellow, red, status, updated_at) VALUES (1, 1, 1, 0, 'OPTIMAL', ?)`, now,
	); err == nil {
		t.Fatalf("expected LED CHECK to reject two lit LEDs")
	}
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.db")
	for i := 0; i < 2; i++ {
		conn, err := InitDB(path)
		if err != nil {
			t.Fatalf("InitDB #%d: %v", i+1, err)
		}
		_ = conn.Close()
	}
}
