package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mariadb"

	"github.com/zoobzio/typedsql"
	mariadbdialect "github.com/zoobzio/typedsql/mariadb"
	mysqldialect "github.com/zoobzio/typedsql/mysql"
)

// MySQLContainer wraps a testcontainers MariaDB instance. The MySQL and
// MariaDB dialects both run against it.
type MySQLContainer struct {
	container *mariadb.MariaDBContainer
	db        *sql.DB
}

// Exec executes a SQL statement.
func (mc *MySQLContainer) Exec(ctx context.Context, t *testing.T, query string, args ...any) {
	t.Helper()
	if _, err := mc.db.ExecContext(ctx, query, args...); err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
	}
}

// Strings runs a query whose first column is a string.
func (mc *MySQLContainer) Strings(ctx context.Context, t *testing.T, query string, args ...any) []string {
	t.Helper()
	rows, err := mc.db.QueryContext(ctx, query, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, query)
	}
	return scanStrings(t, rows)
}

// setupMySQL creates the schema, optionally seeds it, and truncates every
// table when the test ends.
func setupMySQL(ctx context.Context, t *testing.T, seed bool) *MySQLContainer {
	t.Helper()
	skipShort(t)

	mc := getMariaDBContainer(t)
	mc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			age INT,
			active BOOLEAN DEFAULT true
		)
	`)
	mc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS posts (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT,
			title VARCHAR(255) NOT NULL,
			views INT DEFAULT 0,
			published BOOLEAN DEFAULT false,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)
	`)
	mc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS orders (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT,
			total DECIMAL(10,2) NOT NULL,
			status VARCHAR(50) DEFAULT 'pending',
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)
	`)
	mc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS archive (
			username VARCHAR(255) DEFAULT 'unknown',
			email VARCHAR(255)
		)
	`)
	t.Cleanup(func() {
		mc.Exec(ctx, t, `SET FOREIGN_KEY_CHECKS = 0`)
		for _, table := range []string{"archive", "orders", "posts", "users"} {
			mc.Exec(ctx, t, "TRUNCATE TABLE "+table)
		}
		mc.Exec(ctx, t, `SET FOREIGN_KEY_CHECKS = 1`)
	})

	if seed {
		for _, stmt := range seedStatements("true", "false") {
			mc.Exec(ctx, t, stmt)
		}
	}
	return mc
}

func TestMySQLIntegration_Scenarios(t *testing.T) {
	ctx := context.Background()
	mc := setupMySQL(ctx, t, true)
	c := testCatalog(t)

	dialects := []typedsql.Dialect{mysqldialect.New(), mariadbdialect.New()}
	for _, d := range dialects {
		t.Run(d.Name(), func(t *testing.T) {
			for _, sc := range portableScenarios(c) {
				t.Run(sc.name, func(t *testing.T) {
					result := render(t, sc.query, d)
					assertRows(t, result.SQL, sc.want, mc.Strings(ctx, t, result.SQL, result.Args...))
				})
			}
		})
	}
}

func TestMySQLIntegration_Joins(t *testing.T) {
	ctx := context.Background()
	mc := setupMySQL(ctx, t, true)
	c := testCatalog(t)

	tests := []struct {
		name string
		q    typedsql.QuerySpecification
		want []string
	}{
		{
			name: "using",
			q: typedsql.Select(c.C("posts", "title")).
				From(c.T("posts").InnerJoin(c.T("orders")).Using(typedsql.ID("user_id"))).
				Distinct(),
			want: []string{"Bobs Post", "First Post", "Second Post"},
		},
		{
			name: "right join",
			q: typedsql.Select(c.C("users", "username")).
				From(c.T("posts").RightJoin(c.T("users")).On(typedsql.Eq(c.C("posts", "user_id"), c.C("users", "id")))),
			want: []string{"alice", "alice", "bob", "charlie", "diana"},
		},
		{
			name: "cross join",
			q: typedsql.Select(c.C("users", "username")).
				From(c.T("users").CrossJoin(c.T("orders"))).
				Where(typedsql.Eq(c.C("orders", "id"), typedsql.Bind(1))),
			want: []string{"alice", "bob", "charlie", "diana"},
		},
		{
			name: "truth test",
			q: typedsql.Select(c.C("users", "username")).
				From(c.T("users")).
				Where(c.C("users", "active").IsNot(typedsql.True)),
			want: []string{"charlie"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := render(t, tt.q, mysqldialect.New())
			assertRows(t, result.SQL, tt.want, mc.Strings(ctx, t, result.SQL, result.Args...))
		})
	}
}

func TestMySQLIntegration_NamedParametersFallBack(t *testing.T) {
	ctx := context.Background()
	mc := setupMySQL(ctx, t, true)
	c := testCatalog(t)

	q := typedsql.Select(c.C("users", "username")).
		From(c.T("users")).
		Where(typedsql.Eq(c.C("users", "username"), typedsql.BindNamed("name", "diana")))

	result := render(t, q, mariadbdialect.New())
	want := "SELECT users.username FROM users WHERE users.username = ?"
	if result.SQL != want {
		t.Fatalf("SQL = %q, want %q", result.SQL, want)
	}
	assertRows(t, result.SQL, []string{"diana"}, mc.Strings(ctx, t, result.SQL, result.Args...))
}

func TestMySQLIntegration_Insert(t *testing.T) {
	ctx := context.Background()
	mc := setupMySQL(ctx, t, false)
	c := testCatalog(t)

	result := render(t, insertUser(c, "eve", 22), mysqldialect.New())
	mc.Exec(ctx, t, result.SQL, result.Args...)

	got := mc.Strings(ctx, t, "SELECT email FROM users WHERE username = ?", "eve")
	assertRows(t, "SELECT email", []string{"eve@example.com"}, got)
}

func TestMySQLIntegration_InsertQuery(t *testing.T) {
	ctx := context.Background()
	mc := setupMySQL(ctx, t, true)
	c := testCatalog(t)

	result := render(t, archiveActive(c), mariadbdialect.New())
	mc.Exec(ctx, t, result.SQL, result.Args...)

	got := mc.Strings(ctx, t, "SELECT username FROM archive")
	assertRows(t, "SELECT username", []string{"alice", "bob", "diana"}, got)
}
