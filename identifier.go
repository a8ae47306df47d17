package typedsql

import "regexp"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Ident is a bare SQL identifier.
//
//sqlgen:symbol Identifier
type Ident struct {
	text string
}

// TryID validates text against the identifier rule.
func TryID(text string) (Ident, error) {
	if !identPattern.MatchString(text) {
		return Ident{}, NewIdentifierError(text)
	}
	return Ident{text: text}, nil
}

// ID is TryID for literal identifiers. It panics on invalid text.
func ID(text string) Ident {
	id, err := TryID(text)
	if err != nil {
		panic(err)
	}
	return id
}

// Text returns the identifier as written.
func (n Ident) Text() string {
	return n.text
}

func (n Ident) WriteSQL(ctx *Context) {
	ctx.WriteString(n.text)
}

// IdentChain is a dotted identifier such as users.id.
//
//sqlgen:symbol IdentifierChain
type IdentChain struct {
	head IdentifierChain
	tail Identifier
}

func (n IdentChain) WriteSQL(ctx *Context) {
	n.head.WriteSQL(ctx)
	ctx.WriteString(".")
	n.tail.WriteSQL(ctx)
}

func dot(head IdentifierChain, id Identifier) IdentifierChain {
	return IdentChain{head: head, tail: id}
}

// QualifiedName is a schema-qualified table name.
//
//sqlgen:symbol LocalOrSchemaQualifiedName
type QualifiedName struct {
	schema SchemaName
	name   Identifier
}

// Qualified names table in schema.
func Qualified(schema SchemaName, table Identifier) QualifiedName {
	return QualifiedName{schema: schema, name: table}
}

func (n QualifiedName) WriteSQL(ctx *Context) {
	n.schema.WriteSQL(ctx)
	ctx.WriteString(".")
	n.name.WriteSQL(ctx)
}
