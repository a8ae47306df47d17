package typedsql

// ArithmeticExpr is l + r or l - r.
//
//sqlgen:symbol NumericValueExpression
type ArithmeticExpr struct {
	left  NumericValueExpression
	op    string
	right Term
}

func (n ArithmeticExpr) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" " + n.op + " ")
	n.right.WriteSQL(ctx)
}

func plus(l NumericValueExpression, r Term) NumericValueExpression {
	return ArithmeticExpr{left: l, op: "+", right: r}
}

func minus(l NumericValueExpression, r Term) NumericValueExpression {
	return ArithmeticExpr{left: l, op: "-", right: r}
}

// TermExpr is l * r or l / r.
//
//sqlgen:symbol Term
type TermExpr struct {
	left  Term
	op    string
	right Factor
}

func (n TermExpr) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" " + n.op + " ")
	n.right.WriteSQL(ctx)
}

func mul(l Term, r Factor) Term {
	return TermExpr{left: l, op: "*", right: r}
}

func div(l Term, r Factor) Term {
	return TermExpr{left: l, op: "/", right: r}
}

// AliasedColumn is value AS name in a select list.
//
//sqlgen:symbol DerivedColumn
type AliasedColumn struct {
	value ValueExpression
	name  ColumnName
}

func (n AliasedColumn) WriteSQL(ctx *Context) {
	n.value.WriteSQL(ctx)
	ctx.WriteString(" AS ")
	n.name.WriteSQL(ctx)
}

func aliasColumn(v ValueExpression, name ColumnName) DerivedColumn {
	return AliasedColumn{value: v, name: name}
}

// RoutineCall invokes a function by name.
//
//sqlgen:symbol RoutineInvocation
type RoutineCall struct {
	name RoutineName
	args SQLArgumentList
}

// Routine calls name with args. Pass Blank{} for a call without arguments.
func Routine(name RoutineName, args SQLArgumentList) RoutineCall {
	return RoutineCall{name: name, args: args}
}

func (n RoutineCall) WriteSQL(ctx *Context) {
	n.name.WriteSQL(ctx)
	ctx.WriteString("(")
	n.args.WriteSQL(ctx)
	ctx.WriteString(")")
}

// ArgumentLink appends one argument to a routine argument list.
//
//sqlgen:symbol SQLArgumentList
type ArgumentLink struct {
	head SQLArgumentList
	tail SQLArgument
}

func (n ArgumentLink) WriteSQL(ctx *Context) {
	ctx.list(n.head, n.tail)
}

func addArgument(head SQLArgumentList, arg SQLArgument) SQLArgumentList {
	return ArgumentLink{head: head, tail: arg}
}

func startArguments(arg SQLArgument) SQLArgumentList {
	return arg
}
