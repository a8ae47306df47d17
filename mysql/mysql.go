// Package mysql provides the MySQL dialect for typedsql.
package mysql

import "github.com/zoobzio/typedsql/internal/render"

// Dialect renders bound values as ?.
type Dialect struct{}

// New creates a new MySQL dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "mysql"
}

// Capabilities returns the placeholder conventions of MySQL.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Positional: render.Question,
		Named:      render.None,
	}
}
