package typedsql_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/zoobzio/typedsql"
	"github.com/zoobzio/typedsql/mssql"
	"github.com/zoobzio/typedsql/sqlite"
	tsqltest "github.com/zoobzio/typedsql/testing"
)

var injectionAttempts = []struct {
	name string
	text string
}{
	{"DROP TABLE", "x OR 1=1; DROP TABLE users --"},
	{"Union injection", "id UNION SELECT * FROM passwords"},
	{"Comment injection", "id/**/OR/**/1=1"},
	{"Stacked queries", "id; DELETE FROM users"},
	{"Quote injection", "id' OR '1'='1"},
	{"Double quote injection", `id" OR "1"="1`},
	{"Null byte injection", "id\x00 OR 1=1"},
	{"Whitespace tricks", "id\nOR\n1=1"},
	{"Function injection", "id) OR SLEEP(10)--"},
	{"Empty", ""},
	{"Leading digit", "1id"},
}

func TestIdentifierInjection(t *testing.T) {
	for _, attempt := range injectionAttempts {
		t.Run(attempt.name, func(t *testing.T) {
			if _, err := typedsql.TryID(attempt.text); !errors.Is(err, typedsql.ErrInvalidIdentifier) {
				t.Errorf("TryID(%q) error = %v, want ErrInvalidIdentifier", attempt.text, err)
			}
		})
	}
}

func TestNamedParameterInjection(t *testing.T) {
	for _, attempt := range injectionAttempts {
		t.Run(attempt.name, func(t *testing.T) {
			_, err := typedsql.TryBindNamed(attempt.text, 1)
			var idErr typedsql.IdentifierError
			if !errors.As(err, &idErr) {
				t.Fatalf("TryBindNamed(%q) error = %v, want IdentifierError", attempt.text, err)
			}
			if idErr.Text != attempt.text {
				t.Errorf("Text = %q, want %q", idErr.Text, attempt.text)
			}

			tsqltest.AssertPanics(t, func() {
				typedsql.Select(typedsql.ID("id")).
					From(typedsql.ID("users")).
					Where(typedsql.Eq(typedsql.ID("id"), typedsql.BindNamed(attempt.text, 1)))
			})
		})
	}
}

// rawNamed calls Context.BindNamed directly, skipping the builder check.
type rawNamed struct {
	name string
}

func (n rawNamed) WriteSQL(ctx *typedsql.Context) {
	ctx.BindNamed(n.name, 1)
}

func TestContextBindNamedRejectsInvalidName(t *testing.T) {
	tsqltest.AssertPanicsWithMessage(t, func() {
		_, _ = typedsql.Build(rawNamed{name: "x OR 1=1"}, sqlite.New())
	}, `invalid identifier "x OR 1=1"`)
}

func TestNamedParameterValid(t *testing.T) {
	p, err := typedsql.TryBindNamed("user_id", 7)
	if err != nil {
		t.Fatalf("TryBindNamed error = %v", err)
	}
	result := tsqltest.Build(t, typedsql.Eq(typedsql.ID("id"), p), mssql.New())
	tsqltest.AssertSQL(t, "id = @user_id", result.SQL)
	tsqltest.AssertArgs(t, []any{sql.Named("user_id", 7)}, result.Args)
}

func TestStringLiteralInjection(t *testing.T) {
	q := typedsql.Select(typedsql.ID("id")).
		From(typedsql.ID("users")).
		Where(typedsql.Eq(typedsql.ID("name"), typedsql.Str("x' OR '1'='1")))
	tsqltest.AssertSQL(t, "SELECT id FROM users WHERE name = 'x'' OR ''1''=''1'", tsqltest.Build(t, q, nil).SQL)
}
