// Package mariadb provides the MariaDB dialect for typedsql.
package mariadb

import "github.com/zoobzio/typedsql/internal/render"

// Dialect renders bound values as ?.
type Dialect struct{}

// New creates a new MariaDB dialect.
func New() *Dialect {
	return &Dialect{}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "mariadb"
}

// Capabilities returns the placeholder conventions of MariaDB. The driver has
// no named placeholders.
func (d *Dialect) Capabilities() render.Capabilities {
	return render.Capabilities{
		Positional: render.Question,
		Named:      render.None,
	}
}
