package integration

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/zoobzio/typedsql"
	pgdialect "github.com/zoobzio/typedsql/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
}

// Exec executes a SQL statement.
func (pc *PostgresContainer) Exec(ctx context.Context, t *testing.T, sql string, args ...any) {
	t.Helper()
	if _, err := pc.conn.Exec(ctx, sql, args...); err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// Strings runs a query whose first column is text.
func (pc *PostgresContainer) Strings(ctx context.Context, t *testing.T, sql string, args ...any) []string {
	t.Helper()
	rows, err := pc.conn.Query(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sql)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		t.Fatalf("Failed to collect rows: %v\nSQL: %s", err, sql)
	}
	return out
}

// setupPostgres creates the schema, optionally seeds it, and truncates every
// table when the test ends.
func setupPostgres(ctx context.Context, t *testing.T, seed bool) *PostgresContainer {
	t.Helper()
	skipShort(t)

	pc := getPostgresContainer(t)
	pc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			age INT,
			active BOOLEAN DEFAULT true
		)
	`)
	pc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT REFERENCES users(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			views INT DEFAULT 0,
			published BOOLEAN DEFAULT false
		)
	`)
	pc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT REFERENCES users(id) ON DELETE CASCADE,
			total NUMERIC(10,2) NOT NULL,
			status VARCHAR(50) DEFAULT 'pending'
		)
	`)
	pc.Exec(ctx, t, `
		CREATE TABLE IF NOT EXISTS archive (
			username VARCHAR(255) DEFAULT 'unknown',
			email VARCHAR(255)
		)
	`)
	t.Cleanup(func() {
		pc.Exec(ctx, t, `TRUNCATE TABLE archive, orders, posts, users RESTART IDENTITY CASCADE`)
	})

	if seed {
		for _, stmt := range seedStatements("true", "false") {
			pc.Exec(ctx, t, stmt)
		}
	}
	return pc
}

func TestIntegration_Scenarios(t *testing.T) {
	ctx := context.Background()
	pc := setupPostgres(ctx, t, true)
	c := testCatalog(t)

	for _, sc := range portableScenarios(c) {
		t.Run(sc.name, func(t *testing.T) {
			result := render(t, sc.query, pgdialect.New())
			assertRows(t, result.SQL, sc.want, pc.Strings(ctx, t, result.SQL, result.Args...))
		})
	}
}

func TestIntegration_NamedParametersFallBack(t *testing.T) {
	ctx := context.Background()
	pc := setupPostgres(ctx, t, true)
	c := testCatalog(t)

	q := typedsql.Select(c.C("users", "username")).
		From(c.T("users")).
		Where(typedsql.Eq(c.C("users", "username"), typedsql.BindNamed("name", "bob")))

	result := render(t, q, pgdialect.New())
	want := "SELECT users.username FROM users WHERE users.username = $1"
	if result.SQL != want {
		t.Fatalf("SQL = %q, want %q", result.SQL, want)
	}
	assertRows(t, result.SQL, []string{"bob"}, pc.Strings(ctx, t, result.SQL, result.Args...))
}

func TestIntegration_Joins(t *testing.T) {
	ctx := context.Background()
	pc := setupPostgres(ctx, t, true)
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
			name: "full outer",
			q: typedsql.Select(c.C("users", "username")).
				From(c.T("users").JoinWith(typedsql.JoinFullOuter, c.T("posts")).
					On(typedsql.Eq(c.C("posts", "user_id"), c.C("users", "id")))),
			want: []string{"alice", "alice", "bob", "charlie", "diana"},
		},
		{
			name: "natural",
			q: typedsql.Select(c.C("orders", "status")).
				From(c.T("orders").NaturalJoin(c.T("posts"))).
				Where(typedsql.Eq(c.C("orders", "user_id"), typedsql.Bind(1))),
			want: []string{"completed", "completed"},
		},
		{
			name: "truth test",
			q: typedsql.Select(c.C("users", "username")).
				From(c.T("users")).
				Where(c.C("users", "active").Is(typedsql.False)),
			want: []string{"charlie"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := render(t, tt.q, pgdialect.New())
			assertRows(t, result.SQL, tt.want, pc.Strings(ctx, t, result.SQL, result.Args...))
		})
	}
}

func TestIntegration_Insert(t *testing.T) {
	ctx := context.Background()
	pc := setupPostgres(ctx, t, false)
	c := testCatalog(t)

	result := render(t, insertUser(c, "eve", 22), pgdialect.New())
	pc.Exec(ctx, t, result.SQL, result.Args...)

	got := pc.Strings(ctx, t, "SELECT email FROM users WHERE username = $1", "eve")
	assertRows(t, "SELECT email", []string{"eve@example.com"}, got)
}

func TestIntegration_InsertQuery(t *testing.T) {
	ctx := context.Background()
	pc := setupPostgres(ctx, t, true)
	c := testCatalog(t)

	result := render(t, archiveActive(c), pgdialect.New())
	pc.Exec(ctx, t, result.SQL, result.Args...)

	got := pc.Strings(ctx, t, "SELECT username FROM archive")
	assertRows(t, "SELECT username", []string{"alice", "bob", "diana"}, got)
}

func TestIntegration_InsertOverridingAndDefaults(t *testing.T) {
	ctx := context.Background()
	pc := setupPostgres(ctx, t, false)
	c := testCatalog(t)

	override := typedsql.InsertInto(c.T("users")).
		Columns(typedsql.ID("id").AddColumn(typedsql.ID("username")).AddColumn(typedsql.ID("email"))).
		Override(typedsql.OverridingUser{}).
		Values(typedsql.Lit(99).AddElement(typedsql.Str("frank")).AddElement(typedsql.Str("frank@example.com")).Row())

	result := render(t, override, pgdialect.New())
	pc.Exec(ctx, t, result.SQL, result.Args...)

	defaults := render(t, typedsql.InsertInto(c.T("archive")).DefaultValues(), pgdialect.New())
	pc.Exec(ctx, t, defaults.SQL, defaults.Args...)

	assertRows(t, "SELECT username", []string{"frank"}, pc.Strings(ctx, t, "SELECT username FROM users"))
	assertRows(t, "SELECT username", []string{"unknown"}, pc.Strings(ctx, t, "SELECT username FROM archive"))
}
