package typedsql

// Lists are built by appending at the tail. Each link holds the list so far
// and one new element, and renders as "head, tail".

// SelectLink is a select list with one more element.
//
//sqlgen:symbol SelectSublist
type SelectLink struct {
	head SelectSublist
	tail SelectSublistElement
}

func (n SelectLink) WriteSQL(ctx *Context) { ctx.list(n.head, n.tail) }

func addSelection(head SelectSublist, elem SelectSublistElement) SelectSublist {
	return SelectLink{head: head, tail: elem}
}

func startSelection(elem SelectSublistElement) SelectSublist {
	return elem
}

// ColumnNameLink is a column name list with one more column.
//
//sqlgen:symbol ColumnNameList
type ColumnNameLink struct {
	head ColumnNameList
	tail ColumnName
}

func (n ColumnNameLink) WriteSQL(ctx *Context) { ctx.list(n.head, n.tail) }

func addColumn(head ColumnNameList, name ColumnName) ColumnNameList {
	return ColumnNameLink{head: head, tail: name}
}

// TableReferenceLink is a FROM list with one more table reference.
//
//sqlgen:symbol TableReferenceList
type TableReferenceLink struct {
	head TableReferenceList
	tail TableReference
}

func (n TableReferenceLink) WriteSQL(ctx *Context) { ctx.list(n.head, n.tail) }

func addTable(head TableReferenceList, ref TableReference) TableReferenceList {
	return TableReferenceLink{head: head, tail: ref}
}

// GroupingLink is a GROUP BY list with one more element.
//
//sqlgen:symbol GroupingElementList
type GroupingLink struct {
	head GroupingElementList
	tail GroupingElement
}

func (n GroupingLink) WriteSQL(ctx *Context) { ctx.list(n.head, n.tail) }

func addGrouping(head GroupingElementList, elem GroupingElement) GroupingElementList {
	return GroupingLink{head: head, tail: elem}
}

// RowElementLink is a row constructor element list with one more element.
//
//sqlgen:symbol ContextuallyTypedRowValueConstructorElementList
type RowElementLink struct {
	head ContextuallyTypedRowValueConstructorElementList
	tail ContextuallyTypedRowValueConstructorElement
}

func (n RowElementLink) WriteSQL(ctx *Context) { ctx.list(n.head, n.tail) }

func addElement(head ContextuallyTypedRowValueConstructorElementList, elem ContextuallyTypedRowValueConstructorElement) ContextuallyTypedRowValueConstructorElementList {
	return RowElementLink{head: head, tail: elem}
}

// RowLink is a VALUES row list with one more row.
//
//sqlgen:symbol ContextuallyTypedRowValueExpressionList
type RowLink struct {
	head ContextuallyTypedRowValueExpressionList
	tail ContextuallyTypedRowValueExpression
}

func (n RowLink) WriteSQL(ctx *Context) { ctx.list(n.head, n.tail) }

func addRow(head ContextuallyTypedRowValueExpressionList, row ContextuallyTypedRowValueExpression) ContextuallyTypedRowValueExpressionList {
	return RowLink{head: head, tail: row}
}

// RowValue is a parenthesized row of values.
//
//sqlgen:symbol ContextuallyTypedRowValueConstructor
type RowValue struct {
	elems ContextuallyTypedRowValueConstructorElementList
}

// Row wraps elems in parentheses.
func Row(elems ContextuallyTypedRowValueConstructorElementList) RowValue {
	return RowValue{elems: elems}
}

func (n RowValue) WriteSQL(ctx *Context) {
	ctx.WriteString("(")
	n.elems.WriteSQL(ctx)
	ctx.WriteString(")")
}

func rowValue(elems ContextuallyTypedRowValueConstructorElementList) ContextuallyTypedRowValueConstructor {
	return Row(elems)
}
