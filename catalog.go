package typedsql

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Catalog resolves table and column identifiers against a DBML schema.
type Catalog struct {
	tables  map[string]Ident
	columns map[string]map[string]IdentChain // table -> column -> table.column
}

// NewCatalog indexes the tables and columns of project.
func NewCatalog(project *dbml.Project) (*Catalog, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	c := &Catalog{
		tables:  make(map[string]Ident),
		columns: make(map[string]map[string]IdentChain),
	}

	for _, table := range project.Tables {
		tableID, err := TryID(table.Name)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", table.Name, err)
		}
		c.tables[table.Name] = tableID
		c.columns[table.Name] = make(map[string]IdentChain)
		for _, col := range table.Columns {
			colID, err := TryID(col.Name)
			if err != nil {
				return nil, fmt.Errorf("column %q of table %q: %w", col.Name, table.Name, err)
			}
			c.columns[table.Name][col.Name] = IdentChain{head: tableID, tail: colID}
		}
	}

	return c, nil
}

// Table returns the identifier of a schema table.
func (c *Catalog) Table(name string) (Ident, error) {
	id, ok := c.tables[name]
	if !ok {
		return Ident{}, fmt.Errorf("table '%s' %w", name, ErrNotInSchema)
	}
	return id, nil
}

// T is Table for names known to exist. It panics otherwise.
func (c *Catalog) T(name string) Ident {
	id, err := c.Table(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Column returns table.column for a schema column.
func (c *Catalog) Column(table, column string) (IdentChain, error) {
	cols, ok := c.columns[table]
	if !ok {
		return IdentChain{}, fmt.Errorf("table '%s' %w", table, ErrNotInSchema)
	}
	ref, ok := cols[column]
	if !ok {
		return IdentChain{}, fmt.Errorf("column '%s.%s' %w", table, column, ErrNotInSchema)
	}
	return ref, nil
}

// C is Column for columns known to exist. It panics otherwise.
func (c *Catalog) C(table, column string) IdentChain {
	ref, err := c.Column(table, column)
	if err != nil {
		panic(err)
	}
	return ref
}
