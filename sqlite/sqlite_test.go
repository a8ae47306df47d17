package sqlite

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/zoobzio/typedsql"
	"github.com/zoobzio/typedsql/internal/render"
)

func TestNew(t *testing.T) {
	d := New()
	if d == nil {
		t.Fatal("New() returned nil")
	}
	if got := d.Name(); got != "sqlite" {
		t.Errorf("Name() = %q, want %q", got, "sqlite")
	}
}

func TestCapabilities(t *testing.T) {
	caps := New().Capabilities()
	if got := caps.Placeholder(3); got != "?" {
		t.Errorf("Placeholder(3) = %q, want %q", got, "?")
	}
	if got := caps.SupportsNamed(); got != true {
		t.Errorf("SupportsNamed() = %v, want true", got)
	}
	if caps.Positional == render.None {
		t.Error("positional placeholders must always be supported")
	}
}

func TestRender_Select(t *testing.T) {
	q := typedsql.Select(typedsql.ID("id").Add(typedsql.ID("name"))).
		From(typedsql.ID("users")).
		Where(typedsql.Eq(typedsql.ID("active"), typedsql.Bind(true)).And(typedsql.Gt(typedsql.ID("age"), typedsql.Bind(18))))

	result, err := typedsql.Build(q, New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	expected := "SELECT id, name FROM users WHERE active = ? AND age > ?"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
	if !reflect.DeepEqual(result.Args, []any{true, 18}) {
		t.Errorf("Args = %v, want [true 18]", result.Args)
	}
}

func TestRender_NamedParam(t *testing.T) {
	cond := typedsql.And(
		typedsql.Eq(typedsql.ID("a"), typedsql.Bind(1)),
		typedsql.Eq(typedsql.ID("b"), typedsql.BindNamed("name", "x")),
	)

	result, err := typedsql.Build(cond, New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if result.SQL != "a = ? AND b = :name" {
		t.Errorf("SQL = %q, want %q", result.SQL, "a = ? AND b = :name")
	}
	if want := []any{1, sql.Named("name", "x")}; !reflect.DeepEqual(result.Args, want) {
		t.Errorf("Args = %v, want %v", result.Args, want)
	}
}

func TestRender_Insert(t *testing.T) {
	stmt := typedsql.InsertInto(typedsql.ID("users")).
		Columns(typedsql.ID("name").AddColumn(typedsql.ID("age"))).
		Values(typedsql.Row(typedsql.Bind("ann").AddElement(typedsql.Bind(30))))

	result, err := typedsql.Build(stmt, New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	expected := "INSERT INTO users (name, age) VALUES (?, ?)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
	if len(result.Args) != 2 {
		t.Errorf("len(Args) = %d, want 2", len(result.Args))
	}
}
