package typedsql_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/zoobzio/typedsql"
	tsqltest "github.com/zoobzio/typedsql/testing"
)

func TestColumnListOrder(t *testing.T) {
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			names := make([]string, n)
			for i := range names {
				names[i] = fmt.Sprintf("c%d", i+1)
			}

			var list typedsql.ColumnNameList = typedsql.ID(names[0])
			for _, name := range names[1:] {
				list = list.AddColumn(typedsql.ID(name))
			}

			got := tsqltest.Build(t, list, nil).SQL
			tsqltest.AssertSQL(t, strings.Join(names, ", "), got)
		})
	}
}

func TestSelectList(t *testing.T) {
	list := typedsql.ID("id").
		Add(typedsql.ID("users").Dot(typedsql.ID("email"))).
		Add(typedsql.Lit(1).Alias(typedsql.ID("one"))).
		Add(typedsql.Star{})

	tsqltest.AssertSQL(t, "id, users.email, 1 AS one, *", tsqltest.Build(t, list, nil).SQL)
}

func TestSelectListFromBlank(t *testing.T) {
	list := typedsql.Blank{}.Add(typedsql.ID("a")).Add(typedsql.ID("b"))
	tsqltest.AssertSQL(t, "a, b", tsqltest.Build(t, list, nil).SQL)
}

func TestGroupingList(t *testing.T) {
	list := typedsql.ID("region").
		AddGrouping(typedsql.ID("orders").Dot(typedsql.ID("status")))

	tsqltest.AssertSQL(t, "region, orders.status", tsqltest.Build(t, list, nil).SQL)
}

func TestTableReferenceList(t *testing.T) {
	list := typedsql.ID("users").
		AddTable(typedsql.Qualified(typedsql.ID("sales"), typedsql.ID("orders")))

	tsqltest.AssertSQL(t, "users, sales.orders", tsqltest.Build(t, list, nil).SQL)
}

func TestRows(t *testing.T) {
	tests := []struct {
		name string
		rows typedsql.ContextuallyTypedRowValueExpressionList
		want string
	}{
		{
			name: "single row",
			rows: typedsql.Lit(1).AddElement(typedsql.Str("a")).Row(),
			want: "(1, 'a')",
		},
		{
			name: "row helper",
			rows: typedsql.Row(typedsql.Lit(1).AddElement(typedsql.Lit(2)).AddElement(typedsql.Lit(3))),
			want: "(1, 2, 3)",
		},
		{
			name: "several rows",
			rows: typedsql.Row(typedsql.Lit(1).AddElement(typedsql.Lit(2))).
				AddRow(typedsql.Row(typedsql.Lit(3).AddElement(typedsql.Lit(4)))),
			want: "(1, 2), (3, 4)",
		},
		{
			name: "bare values",
			rows: typedsql.Lit(1).AddRow(typedsql.Lit(2)),
			want: "1, 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tsqltest.AssertSQL(t, tt.want, tsqltest.Build(t, tt.rows, nil).SQL)
		})
	}
}
