package typedsql_test

import (
	"fmt"

	"github.com/zoobzio/typedsql"
	"github.com/zoobzio/typedsql/postgres"
)

func ExampleSelect() {
	q := typedsql.Select(
		typedsql.ID("col1").
			Add(typedsql.ID("col2").Alias(typedsql.ID("aliased"))).
			Add(typedsql.ID("col3")),
	).From(typedsql.ID("my_table"))

	fmt.Println(q)
	// Output: SELECT col1, col2 AS aliased, col3 FROM my_table
}

func ExampleBuild() {
	q := typedsql.Select(typedsql.ID("id").Add(typedsql.ID("email"))).
		From(typedsql.ID("users")).
		Where(typedsql.Eq(typedsql.ID("active"), typedsql.Bind(true)).
			And(typedsql.Gte(typedsql.ID("age"), typedsql.Bind(18))))

	result, err := typedsql.Build(q, postgres.New())
	if err != nil {
		panic(err)
	}
	fmt.Println(result.SQL)
	fmt.Println(result.Args)
	// Output:
	// SELECT id, email FROM users WHERE active = $1 AND age >= $2
	// [true 18]
}

func ExampleTransformQuerySpecificationIf() {
	onlyActive := true
	q := typedsql.TransformQuerySpecificationIf(
		typedsql.Select(typedsql.Star{}).From(typedsql.ID("users")),
		onlyActive,
		func(q typedsql.QuerySpecification) typedsql.QuerySpecification {
			return q.Where(typedsql.ID("active").Is(typedsql.True))
		},
	)

	fmt.Println(q)
	// Output: SELECT * FROM users WHERE active IS TRUE
}

func ExampleInsertInto() {
	stmt := typedsql.InsertInto(typedsql.ID("users")).
		Columns(typedsql.ID("id").AddColumn(typedsql.ID("name"))).
		Values(typedsql.Lit(1).AddElement(typedsql.Str("ada")).Row())

	fmt.Println(stmt)
	// Output: INSERT INTO users (id, name) VALUES (1, 'ada')
}

func ExampleIdent_InnerJoin() {
	from := typedsql.ID("users").
		InnerJoin(typedsql.ID("orders")).
		On(typedsql.Eq(typedsql.ID("users").Dot(typedsql.ID("id")), typedsql.ID("orders").Dot(typedsql.ID("user_id"))))

	fmt.Println(from)
	// Output: users INNER JOIN orders ON users.id = orders.user_id
}
