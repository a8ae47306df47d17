package typedsql_test

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/typedsql"
	"github.com/zoobzio/typedsql/mssql"
	"github.com/zoobzio/typedsql/postgres"
	"github.com/zoobzio/typedsql/sqlite"
	tsqltest "github.com/zoobzio/typedsql/testing"
)

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit  int
	writes int
	err    error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, w.err
	}
	w.limit -= len(p)
	return len(p), nil
}

func testQuery() typedsql.QuerySpecification {
	return typedsql.Select(typedsql.ID("id").Add(typedsql.ID("name"))).
		From(typedsql.ID("users")).
		Where(typedsql.Eq(typedsql.ID("age"), typedsql.Bind(30)).And(typedsql.Eq(typedsql.ID("name"), typedsql.Bind("ada"))))
}

func TestRenderWriterError(t *testing.T) {
	wantErr := errors.New("disk full")
	w := &failingWriter{limit: 10, err: wantErr}

	args, err := typedsql.Render(w, testQuery(), nil)
	if err != wantErr {
		t.Fatalf("Render() error = %v, want %v", err, wantErr)
	}
	if args != nil {
		t.Errorf("Render() args = %v, want nil", args)
	}

	// Nothing is written after the first failure.
	if w.writes == 0 {
		t.Fatal("writer never called")
	}
	writes := w.writes
	_, _ = typedsql.Render(w, typedsql.ID("x"), nil)
	if w.writes != writes+1 {
		t.Errorf("writes = %d, want %d", w.writes, writes+1)
	}
}

func TestRenderStopsAfterFailure(t *testing.T) {
	w := &failingWriter{limit: 0, err: errors.New("closed")}
	if _, err := typedsql.Render(w, testQuery(), nil); err == nil {
		t.Fatal("expected error")
	}
	if w.writes != 1 {
		t.Errorf("writes = %d, want 1", w.writes)
	}
}

func TestBuildWriterIndependent(t *testing.T) {
	var sb strings.Builder
	args, err := typedsql.Render(&sb, testQuery(), nil)
	tsqltest.AssertNoError(t, err)

	result := tsqltest.Build(t, testQuery(), nil)
	tsqltest.AssertSQL(t, result.SQL, sb.String())
	tsqltest.AssertArgs(t, result.Args, args)
}

func TestDialectPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		dialect typedsql.Dialect
		want    string
	}{
		{"default", nil, "SELECT id, name FROM users WHERE age = ? AND name = ?"},
		{"postgres", postgres.New(), "SELECT id, name FROM users WHERE age = $1 AND name = $2"},
		{"sqlite", sqlite.New(), "SELECT id, name FROM users WHERE age = ? AND name = ?"},
		{"mssql", mssql.New(), "SELECT id, name FROM users WHERE age = @p1 AND name = @p2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tsqltest.Build(t, testQuery(), tt.dialect)
			tsqltest.AssertSQL(t, tt.want, result.SQL)
			tsqltest.AssertArgs(t, []any{30, "ada"}, result.Args)
		})
	}
}

func TestNamedParameters(t *testing.T) {
	cond := typedsql.Eq(typedsql.ID("id"), typedsql.BindNamed("user_id", 5))

	tests := []struct {
		name     string
		dialect  typedsql.Dialect
		wantSQL  string
		wantArgs []any
	}{
		{"default", nil, "id = ?", []any{5}},
		{"postgres", postgres.New(), "id = $1", []any{5}},
		{"sqlite", sqlite.New(), "id = :user_id", []any{sql.Named("user_id", 5)}},
		{"mssql", mssql.New(), "id = @user_id", []any{sql.Named("user_id", 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tsqltest.Build(t, cond, tt.dialect)
			tsqltest.AssertSQL(t, tt.wantSQL, result.SQL)
			tsqltest.AssertArgs(t, tt.wantArgs, result.Args)
		})
	}
}

func TestArgsFollowPlaceholderOrder(t *testing.T) {
	inner := typedsql.Select(typedsql.ID("user_id")).From(typedsql.ID("orders")).
		Where(typedsql.Gt(typedsql.ID("total"), typedsql.Bind(100)))
	q := typedsql.Select(typedsql.Star{}).From(typedsql.ID("users")).
		Where(typedsql.Eq(typedsql.ID("status"), typedsql.Bind("active")).
			And(typedsql.Eq(typedsql.ID("id"), typedsql.Sub(inner))).
			And(typedsql.Lt(typedsql.ID("age"), typedsql.Bind(65))))

	result := tsqltest.Build(t, q, postgres.New())
	tsqltest.AssertSQL(t,
		"SELECT * FROM users WHERE status = $1 AND id = (SELECT user_id FROM orders WHERE total > $2) AND age < $3",
		result.SQL)
	tsqltest.AssertArgs(t, []any{"active", 100, 65}, result.Args)
}

// tableSample is a node defined outside the package. Anything with WriteSQL
// renders.
type tableSample struct {
	percent int
}

func (n tableSample) WriteSQL(ctx *typedsql.Context) {
	ctx.WriteString("TABLESAMPLE SYSTEM (")
	ctx.Bind(n.percent)
	ctx.WriteString(")")
}

func TestCustomNode(t *testing.T) {
	result := tsqltest.Build(t, tableSample{percent: 10}, postgres.New())
	tsqltest.AssertSQL(t, "TABLESAMPLE SYSTEM ($1)", result.SQL)
	tsqltest.AssertArgs(t, []any{10}, result.Args)
}
