package typedsql_test

import (
	"testing"

	"github.com/zoobzio/typedsql"
)

func TestComparisons(t *testing.T) {
	a, b := typedsql.ID("a"), typedsql.ID("b")
	tests := []struct {
		name string
		cond typedsql.Comparison
		want string
	}{
		{"eq", typedsql.Eq(a, b), "a = b"},
		{"neq", typedsql.Neq(a, b), "a <> b"},
		{"lt", typedsql.Lt(a, b), "a < b"},
		{"lte", typedsql.Lte(a, b), "a <= b"},
		{"gt", typedsql.Gt(a, b), "a > b"},
		{"gte", typedsql.Gte(a, b), "a >= b"},
		{"literal", typedsql.Eq(typedsql.ID("test"), typedsql.Lit(10.123)), "test = 10.123"},
		{"string", typedsql.Eq(typedsql.ID("name"), typedsql.Str("o'neil")), "name = 'o''neil'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBooleanOperators(t *testing.T) {
	ab := typedsql.Eq(typedsql.ID("a"), typedsql.ID("b"))
	cd := typedsql.Neq(typedsql.ID("c"), typedsql.ID("d"))
	flag := typedsql.ID("flag")

	tests := []struct {
		name string
		cond typedsql.SearchCondition
		want string
	}{
		{"and", typedsql.And(ab, cd), "a = b AND c <> d"},
		{"and method", ab.And(cd), "a = b AND c <> d"},
		{"or", typedsql.Or(ab, cd), "a = b OR c <> d"},
		{"or method", ab.Or(cd), "a = b OR c <> d"},
		{"not", typedsql.Not(ab), "NOT a = b"},
		{"not method", ab.Not(), "NOT a = b"},
		{"is", typedsql.Is(flag, typedsql.True), "flag IS TRUE"},
		{"is method", flag.Is(typedsql.Unknown), "flag IS UNKNOWN"},
		{"is not", typedsql.IsNot(flag, typedsql.False), "flag IS NOT FALSE"},
		{"is not method", flag.IsNot(typedsql.True), "flag IS NOT TRUE"},
		{"nest", typedsql.Nest(ab.Or(cd)), "(a = b OR c <> d)"},
		{"nest method", ab.Or(cd).Nest(), "(a = b OR c <> d)"},
		{"chain", ab.And(cd).And(flag.Is(typedsql.True)), "a = b AND c <> d AND flag IS TRUE"},
		{"precedence", typedsql.And(ab.Or(cd).Nest(), flag.Not()), "(a = b OR c <> d) AND NOT flag"},
		{"or of ands", typedsql.Or(ab.And(cd), cd.And(ab)), "a = b AND c <> d OR c <> d AND a = b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := typedsql.Build(tt.cond, nil)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if result.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", result.SQL, tt.want)
			}
		})
	}
}
