package integration

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/zoobzio/typedsql"
	"github.com/zoobzio/typedsql/sqlite"
)

// SQLiteDB wraps an in-memory SQLite database for testing.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens a fresh in-memory database with the test schema loaded.
// It is closed when the test ends.
func NewSQLiteDB(t *testing.T, seed bool) *SQLiteDB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open SQLite: %v", err)
	}
	// Each pooled connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	s := &SQLiteDB{db: db}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database: %v", err)
		}
	})

	s.Exec(t, `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			email TEXT NOT NULL,
			age INTEGER,
			active INTEGER DEFAULT 1
		)
	`)
	s.Exec(t, `
		CREATE TABLE posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			views INTEGER DEFAULT 0,
			published INTEGER DEFAULT 0
		)
	`)
	s.Exec(t, `
		CREATE TABLE orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
			total REAL NOT NULL,
			status TEXT DEFAULT 'pending'
		)
	`)
	s.Exec(t, `
		CREATE TABLE archive (
			username TEXT DEFAULT 'unknown',
			email TEXT
		)
	`)

	if seed {
		for _, stmt := range seedStatements("1", "0") {
			s.Exec(t, stmt)
		}
	}
	return s
}

// Exec executes a SQL statement.
func (s *SQLiteDB) Exec(t *testing.T, query string, args ...any) {
	t.Helper()
	if _, err := s.db.Exec(query, args...); err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
	}
}

// Strings runs a query whose first column is a string.
func (s *SQLiteDB) Strings(t *testing.T, query string, args ...any) []string {
	t.Helper()
	rows, err := s.db.Query(query, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, query)
	}
	return scanStrings(t, rows)
}

// Count returns the number of rows in table.
func (s *SQLiteDB) Count(t *testing.T, table string) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	return n
}

func TestSQLiteIntegration_Scenarios(t *testing.T) {
	db := NewSQLiteDB(t, true)
	c := testCatalog(t)

	for _, sc := range portableScenarios(c) {
		t.Run(sc.name, func(t *testing.T) {
			result := render(t, sc.query, sqlite.New())
			assertRows(t, result.SQL, sc.want, db.Strings(t, result.SQL, result.Args...))
		})
	}
}

func TestSQLiteIntegration_NamedParameters(t *testing.T) {
	db := NewSQLiteDB(t, true)
	c := testCatalog(t)

	q := typedsql.Select(c.C("users", "username")).
		From(c.T("users")).
		Where(typedsql.Gte(c.C("users", "age"), typedsql.BindNamed("min_age", 30)).
			And(typedsql.Eq(c.C("users", "active"), typedsql.BindNamed("active", true))))

	result := render(t, q, sqlite.New())
	want := "SELECT users.username FROM users WHERE users.age >= :min_age AND users.active = :active"
	if result.SQL != want {
		t.Fatalf("SQL = %q, want %q", result.SQL, want)
	}
	assertRows(t, result.SQL, []string{"alice"}, db.Strings(t, result.SQL, result.Args...))
}

func TestSQLiteIntegration_JoinUsing(t *testing.T) {
	db := NewSQLiteDB(t, true)
	c := testCatalog(t)

	q := typedsql.Select(c.C("posts", "title")).
		From(c.T("posts").InnerJoin(c.T("orders")).Using(typedsql.ID("user_id"))).
		Distinct()

	result := render(t, q, sqlite.New())
	assertRows(t, result.SQL, []string{"Bobs Post", "First Post", "Second Post"}, db.Strings(t, result.SQL, result.Args...))
}

func TestSQLiteIntegration_IsTrue(t *testing.T) {
	db := NewSQLiteDB(t, true)
	c := testCatalog(t)

	q := typedsql.Select(c.C("users", "username")).
		From(c.T("users")).
		Where(c.C("users", "active").IsNot(typedsql.True))

	result := render(t, q, sqlite.New())
	assertRows(t, result.SQL, []string{"charlie"}, db.Strings(t, result.SQL, result.Args...))
}

func TestSQLiteIntegration_Insert(t *testing.T) {
	db := NewSQLiteDB(t, false)
	c := testCatalog(t)

	result := render(t, insertUser(c, "eve", 22), sqlite.New())
	db.Exec(t, result.SQL, result.Args...)

	got := db.Strings(t, "SELECT email FROM users WHERE username = ?", "eve")
	assertRows(t, "SELECT email", []string{"eve@example.com"}, got)
}

func TestSQLiteIntegration_InsertQuery(t *testing.T) {
	db := NewSQLiteDB(t, true)
	c := testCatalog(t)

	result := render(t, archiveActive(c), sqlite.New())
	db.Exec(t, result.SQL, result.Args...)

	if n := db.Count(t, "archive"); n != 3 {
		t.Errorf("archive rows = %d, want 3", n)
	}
}

func TestSQLiteIntegration_DefaultValues(t *testing.T) {
	db := NewSQLiteDB(t, false)
	c := testCatalog(t)

	result := render(t, typedsql.InsertInto(c.T("archive")).DefaultValues(), sqlite.New())
	db.Exec(t, result.SQL, result.Args...)

	got := db.Strings(t, "SELECT username FROM archive")
	assertRows(t, "SELECT username", []string{"unknown"}, got)
}
