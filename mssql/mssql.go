// Package mssql provides the SQL Server dialect for typedsql.
package mssql

import "github.com/zoobzio/typedsql/internal/render"

// Dialect renders positional values as @p1, @p2, ... and named values as
// @name.
type Dialect struct{}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "mssql"
}

// Capabilities returns the placeholder conventions of SQL Server.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Positional: render.AtP,
		Named:      render.At,
	}
}
