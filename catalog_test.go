package typedsql_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/typedsql"
	tsqltest "github.com/zoobzio/typedsql/testing"
)

func TestNewCatalog(t *testing.T) {
	t.Run("nil project", func(t *testing.T) {
		_, err := typedsql.NewCatalog(nil)
		tsqltest.AssertErrorContains(t, err, "project cannot be nil")
	})

	t.Run("invalid table name", func(t *testing.T) {
		project := dbml.NewProject("bad")
		project.AddTable(dbml.NewTable("user accounts"))

		_, err := typedsql.NewCatalog(project)
		if !errors.Is(err, typedsql.ErrInvalidIdentifier) {
			t.Errorf("error = %v, want ErrInvalidIdentifier", err)
		}
	})

	t.Run("invalid column name", func(t *testing.T) {
		project := dbml.NewProject("bad")
		table := dbml.NewTable("users")
		table.AddColumn(dbml.NewColumn("first-name", "varchar"))
		project.AddTable(table)

		_, err := typedsql.NewCatalog(project)
		if !errors.Is(err, typedsql.ErrInvalidIdentifier) {
			t.Errorf("error = %v, want ErrInvalidIdentifier", err)
		}
		tsqltest.AssertErrorContains(t, err, `column "first-name" of table "users"`)
	})
}

func TestCatalogLookups(t *testing.T) {
	c := tsqltest.TestCatalog(t)

	t.Run("table", func(t *testing.T) {
		id, err := c.Table("users")
		tsqltest.AssertNoError(t, err)
		tsqltest.AssertSQL(t, "users", id.Text())
	})

	t.Run("column", func(t *testing.T) {
		ref, err := c.Column("orders", "total")
		tsqltest.AssertNoError(t, err)
		tsqltest.AssertRenders(t, ref, "orders.total")
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := c.Table("nope")
		if !errors.Is(err, typedsql.ErrNotInSchema) {
			t.Errorf("error = %v, want ErrNotInSchema", err)
		}
		if err.Error() != "table 'nope' not found in schema" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := c.Column("users", "salary")
		if !errors.Is(err, typedsql.ErrNotInSchema) {
			t.Errorf("error = %v, want ErrNotInSchema", err)
		}
		tsqltest.AssertErrorContains(t, err, "column 'users.salary'")
	})

	t.Run("column of unknown table", func(t *testing.T) {
		_, err := c.Column("nope", "id")
		tsqltest.AssertErrorContains(t, err, "table 'nope'")
	})

	t.Run("must variants panic", func(t *testing.T) {
		tsqltest.AssertPanicsWithMessage(t, func() { c.T("nope") }, "not found in schema")
		tsqltest.AssertPanicsWithMessage(t, func() { c.C("users", "salary") }, "not found in schema")
	})
}

func TestCatalogQuery(t *testing.T) {
	c := tsqltest.TestCatalog(t)
	q := typedsql.Select(c.C("products", "name").Add(c.C("products", "price"))).
		From(c.T("products")).
		Where(typedsql.Gt(c.C("products", "stock"), typedsql.Lit(0)))

	tsqltest.AssertSQL(t, "SELECT products.name, products.price FROM products WHERE products.stock > 0", tsqltest.Build(t, q, nil).SQL)
}

func TestCatalogIsSnapshot(t *testing.T) {
	project := dbml.NewProject("shop")
	project.AddTable(dbml.NewTable("users"))

	c, err := typedsql.NewCatalog(project)
	tsqltest.AssertNoError(t, err)

	project.AddTable(dbml.NewTable("orders"))
	if _, err := c.Table("orders"); !errors.Is(err, typedsql.ErrNotInSchema) {
		t.Errorf("Table(orders) error = %v, want ErrNotInSchema", err)
	}
	if _, err := c.Table("users"); err != nil {
		t.Errorf("Table(users) error = %v", err)
	}
}
