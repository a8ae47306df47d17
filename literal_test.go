package typedsql_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zoobzio/typedsql"
	tsqltest "github.com/zoobzio/typedsql/testing"
)

func TestStr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"abc", "'abc'"},
		{"a'b", "'a''b'"},
		{"''", "''''''"},
		{"it's a 'test'", "'it''s a ''test'''"},
		{"; DROP TABLE users; --", "'; DROP TABLE users; --'"},
	}
	for _, tt := range tests {
		if got := typedsql.Str(tt.in).String(); got != tt.want {
			t.Errorf("Str(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type celsius float64

type level int8

func TestLit(t *testing.T) {
	tests := []struct {
		name string
		lit  typedsql.SignedNumericLit
		want string
	}{
		{"int", typedsql.Lit(10), "10"},
		{"negative", typedsql.Lit(-3), "-3"},
		{"zero", typedsql.Lit(0), "0"},
		{"int64 min", typedsql.Lit(int64(math.MinInt64)), "-9223372036854775808"},
		{"uint64 max", typedsql.Lit(uint64(math.MaxUint64)), "18446744073709551615"},
		{"float", typedsql.Lit(10.123), "10.123"},
		{"float whole", typedsql.Lit(2.0), "2"},
		{"float32", typedsql.Lit(float32(0.1)), "0.1"},
		{"small float", typedsql.Lit(0.000001), "0.000001"},
		{"named float", typedsql.Lit(celsius(-40.5)), "-40.5"},
		{"named int", typedsql.Lit(level(7)), "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnsigned(t *testing.T) {
	tsqltest.AssertRenders(t, typedsql.Unsigned(uint8(255)), "255")
	tsqltest.AssertRenders(t, typedsql.Unsigned(uint(42)), "42")
}

func TestBind(t *testing.T) {
	result := tsqltest.Build(t, typedsql.Bind("x"), nil)
	tsqltest.AssertSQL(t, "?", result.SQL)
	tsqltest.AssertArgs(t, []any{"x"}, result.Args)
}

func TestStarAndTruth(t *testing.T) {
	tsqltest.AssertRenders(t, typedsql.Star{}, "*")
	tsqltest.AssertRenders(t, typedsql.True, "TRUE")
	tsqltest.AssertRenders(t, typedsql.False, "FALSE")
	tsqltest.AssertRenders(t, typedsql.Unknown, "UNKNOWN")
}

func TestLitRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := typedsql.TryLit(tt.v)
			if !errors.Is(err, typedsql.ErrInvalidNumber) {
				t.Errorf("TryLit(%v) error = %v, want ErrInvalidNumber", tt.v, err)
			}
			tsqltest.AssertPanics(t, func() { typedsql.Lit(tt.v) })
		})
	}

	if _, err := typedsql.TryLit(float32(math.Inf(1))); !errors.Is(err, typedsql.ErrInvalidNumber) {
		t.Errorf("TryLit(float32 +Inf) error = %v, want ErrInvalidNumber", err)
	}
	lit, err := typedsql.TryLit(1.5)
	tsqltest.AssertNoError(t, err)
	tsqltest.AssertRenders(t, lit, "1.5")
}
