package db

import (
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/campusops/univserv/internal/config"
)

// newTestProvider backs the provider with a file-based SQLite database so
// the one-connection-per-operation cycle survives between calls.
func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	cfg := &config.Config{
		Driver:   DriverSQLite,
		Database: filepath.Join(t.TempDir(), "services.db"),
	}
	p := NewProvider(cfg)

	ddl := []string{
		`CREATE TABLE Students (
			student_id TEXT PRIMARY KEY,
			first_name TEXT,
			last_name TEXT,
			email TEXT
		)`,
		`CREATE TABLE Services (
			service_id INTEGER PRIMARY KEY AUTOINCREMENT,
			service_name TEXT,
			base_cost REAL
		)`,
	}
	for _, stmt := range ddl {
		if err := p.Exec(stmt); err != nil {
			t.Fatalf("creating schema: %v", err)
		}
	}
	return p
}

func TestInsertThenFetch(t *testing.T) {
	p := newTestProvider(t)

	err := p.Exec(
		"INSERT INTO Students (student_id, first_name, last_name, email) VALUES (?, ?, ?, ?)",
		"S104", "Ada", "Lovelace", "ada@example.com",
	)
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}

	table, err := p.Fetch("SELECT * FROM Students")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if table.NumRows() != 1 {
		t.Fatalf("NumRows() = %d, want 1", table.NumRows())
	}

	want := map[string]string{
		"student_id": "S104",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	}
	for col, value := range want {
		if got := table.Value(0, col); got != value {
			t.Errorf("Value(0, %q) = %q, want %q", col, got, value)
		}
	}
}

func TestFetchEmptyTable(t *testing.T) {
	p := newTestProvider(t)

	table, err := p.Fetch("SELECT * FROM Students")
	if err != nil {
		t.Fatalf("Fetch() on empty table error = %v", err)
	}
	if !table.Empty() {
		t.Errorf("Empty() = false, want true")
	}

	wantColumns := []string{"student_id", "first_name", "last_name", "email"}
	if len(table.Columns) != len(wantColumns) {
		t.Fatalf("Columns = %v, want %v", table.Columns, wantColumns)
	}
	for i, col := range wantColumns {
		if table.Columns[i] != col {
			t.Errorf("Columns[%d] = %q, want %q", i, table.Columns[i], col)
		}
	}
}

func TestFetchErrorIsReturned(t *testing.T) {
	p := newTestProvider(t)

	table, err := p.Fetch("SELECT * FROM NoSuchTable")
	if err == nil {
		t.Fatal("Fetch() on missing table should return an error, got nil")
	}
	if table != nil {
		t.Errorf("Fetch() table = %v, want nil on error", table)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	p := newTestProvider(t)

	err := p.Exec(
		"INSERT INTO Students (student_id, first_name, last_name, email) VALUES (?, ?, ?, ?)",
		"S200", "Grace", "Hopper", "grace@example.com",
	)
	if err != nil {
		t.Fatalf("Exec() insert error = %v", err)
	}

	del := "DELETE FROM Students WHERE student_id = ?"
	if err := p.Exec(del, "S200"); err != nil {
		t.Fatalf("first delete error = %v", err)
	}
	// Zero rows affected is still a success.
	if err := p.Exec(del, "S200"); err != nil {
		t.Fatalf("second delete error = %v, want nil", err)
	}

	if err := p.Exec(del, "never-existed"); err != nil {
		t.Fatalf("delete of nonexistent id error = %v, want nil", err)
	}
}

func TestExecArityMismatch(t *testing.T) {
	p := newTestProvider(t)

	err := p.Exec(
		"INSERT INTO Students (student_id, first_name, last_name, email) VALUES (?, ?, ?, ?)",
		"S300", "Too", "Few",
	)
	if err == nil {
		t.Fatal("Exec() with missing argument should fail")
	}
	if !strings.Contains(err.Error(), "placeholders") {
		t.Errorf("error = %q, want arity message", err)
	}

	table, err := p.Fetch("SELECT * FROM Students")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !table.Empty() {
		t.Errorf("store changed after rejected statement: %d rows", table.NumRows())
	}
}

func TestExecErrorLeavesStoreUnchanged(t *testing.T) {
	p := newTestProvider(t)

	insert := "INSERT INTO Students (student_id, first_name, last_name, email) VALUES (?, ?, ?, ?)"
	if err := p.Exec(insert, "S104", "Ada", "Lovelace", "ada@example.com"); err != nil {
		t.Fatalf("Exec() error = %v", err)
	}

	// Duplicate primary key is rejected by the store.
	if err := p.Exec(insert, "S104", "Someone", "Else", "other@example.com"); err == nil {
		t.Fatal("duplicate insert should fail")
	}

	table, err := p.Fetch("SELECT * FROM Students WHERE student_id = ?", "S104")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if table.NumRows() != 1 {
		t.Fatalf("NumRows() = %d, want 1", table.NumRows())
	}
	if got := table.Value(0, "first_name"); got != "Ada" {
		t.Errorf("first_name = %q, want Ada (original row intact)", got)
	}
}

func TestNullRendering(t *testing.T) {
	p := newTestProvider(t)

	err := p.Exec(
		"INSERT INTO Students (student_id, first_name, last_name, email) VALUES (?, ?, ?, NULL)",
		"S105", "No", "Email",
	)
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}

	table, err := p.Fetch("SELECT * FROM Students")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got := table.Value(0, "email"); got != "NULL" {
		t.Errorf("email = %q, want NULL", got)
	}
}

func TestTableAccessors(t *testing.T) {
	table := &Table{
		Columns: []string{"student_id", "total_cost"},
		Rows:    [][]string{{"S104", "20.00"}},
	}

	if idx := table.ColumnIndex("total_cost"); idx != 1 {
		t.Errorf("ColumnIndex(total_cost) = %d, want 1", idx)
	}
	if idx := table.ColumnIndex("missing"); idx != -1 {
		t.Errorf("ColumnIndex(missing) = %d, want -1", idx)
	}
	if got := table.Value(0, "student_id"); got != "S104" {
		t.Errorf("Value(0, student_id) = %q, want S104", got)
	}
	if got := table.Value(5, "student_id"); got != "" {
		t.Errorf("Value out of range = %q, want empty", got)
	}
}

func TestUnsupportedDriver(t *testing.T) {
	p := NewProvider(&config.Config{Driver: "mongodb"})
	if _, err := p.Open(); err == nil {
		t.Fatal("Open() with unsupported driver should fail")
	}
}
