// Package sqlite provides the SQLite dialect for typedsql.
package sqlite

import "github.com/zoobzio/typedsql/internal/render"

// Dialect renders positional values as ? and named values as :name.
type Dialect struct{}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "sqlite"
}

// Capabilities returns the placeholder conventions of SQLite.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Positional: render.Question,
		Named:      render.Colon,
	}
}
