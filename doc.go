// Package typedsql builds SQL statement trees whose shape is checked by the
// Go compiler.
//
// Every grammar symbol of the supported SQL subset is a Go interface. A node
// that realizes a symbol also implements every broader symbol it can stand
// in for, so a bare identifier is accepted wherever a column name, a value
// expression, a table reference or a search condition is expected, while a
// comparison cannot be passed where a table is required. The interfaces and
// their conformances are generated from internal/grammar/grammar.yaml by
// cmd/sqlgen.
//
// # Basic Usage
//
//	q := typedsql.Select(
//		typedsql.ID("id").Add(typedsql.ID("name").Alias(typedsql.ID("user_name"))),
//	).From(typedsql.ID("users")).
//		Where(typedsql.Eq(typedsql.ID("active"), typedsql.Bind(true)))
//
//	result, err := typedsql.Build(q, postgres.New())
//	// result.SQL:  SELECT id, name AS user_name FROM users WHERE active = $1
//	// result.Args: []any{true}
//
// # Optional Clauses
//
// Blank stands in for any clause that may be missing. It renders nothing and
// absorbs the separator that would precede it. Adding to a Blank list or
// clause produces a present node:
//
//	typedsql.Blank{}.AddFrom(typedsql.ID("users")) // FROM users
//
// # Conditional Composition
//
// Each symbol that may take one of two shapes has a generated union type.
// TransformTableExpressionIf and its siblings apply a transformation only when
// a condition holds, and the result renders exactly as if the chosen branch
// had been built directly.
//
// # Dialects
//
// The postgres, sqlite, mssql, mariadb and mysql packages choose the
// placeholder convention for bound values. A nil dialect renders "?". Dialects
// never change the SQL text of a node.
package typedsql

//go:generate go run ./cmd/sqlgen generate --dir .
