package typedsql

// From is FROM refs.
//
//sqlgen:symbol FromClause
type From struct {
	refs TableReferenceList
}

func (n From) WriteSQL(ctx *Context) {
	ctx.WriteString("FROM ")
	n.refs.WriteSQL(ctx)
}

// AddFrom appends ref to the table references of the clause.
func (n From) AddFrom(ref TableReference) FromClause {
	return From{refs: n.refs.AddTable(ref)}
}

func (n From) table() TableExpr {
	return TableExpr{from: n, where: Blank{}, groupBy: Blank{}, having: Blank{}}
}

// Where starts a table expression filtered by cond.
func (n From) Where(cond SearchCondition) TableExpression {
	return n.table().Where(cond)
}

// GroupBy starts a table expression grouped by list.
func (n From) GroupBy(list GroupingElementList) TableExpression {
	return n.table().GroupBy(list)
}

// Having starts a table expression with a HAVING condition.
func (n From) Having(cond SearchCondition) TableExpression {
	return n.table().Having(cond)
}

// TransformFrom replaces the clause with f applied to it.
func (n From) TransformFrom(f func(FromClause) FromClause) TableExpression {
	return f(n)
}

// TransformWhere starts a table expression whose WHERE clause is f(Blank{}).
func (n From) TransformWhere(f func(WhereClause) WhereClause) TableExpression {
	return n.table().TransformWhere(f)
}

// Where is WHERE cond.
//
//sqlgen:symbol WhereClause
type Where struct {
	cond SearchCondition
}

func (n Where) WriteSQL(ctx *Context) {
	ctx.WriteString("WHERE ")
	n.cond.WriteSQL(ctx)
}

// GroupBy is GROUP BY list.
//
//sqlgen:symbol GroupByClause
type GroupBy struct {
	list GroupingElementList
}

func (n GroupBy) WriteSQL(ctx *Context) {
	ctx.WriteString("GROUP BY ")
	n.list.WriteSQL(ctx)
}

// Having is HAVING cond.
//
//sqlgen:symbol HavingClause
type Having struct {
	cond SearchCondition
}

func (n Having) WriteSQL(ctx *Context) {
	ctx.WriteString("HAVING ")
	n.cond.WriteSQL(ctx)
}

// TableExpr is a FROM clause with its optional WHERE, GROUP BY and HAVING.
// Absent clauses render nothing, separator included.
//
//sqlgen:symbol TableExpression
type TableExpr struct {
	from    FromClause
	where   WhereClause
	groupBy GroupByClause
	having  HavingClause
}

func (n TableExpr) WriteSQL(ctx *Context) {
	sep := ""
	if n.from.presentFromClause() {
		n.from.WriteSQL(ctx)
		sep = " "
	}
	if n.where.presentWhereClause() {
		ctx.WriteString(sep)
		n.where.WriteSQL(ctx)
		sep = " "
	}
	if n.groupBy.presentGroupByClause() {
		ctx.WriteString(sep)
		n.groupBy.WriteSQL(ctx)
		sep = " "
	}
	if n.having.presentHavingClause() {
		ctx.WriteString(sep)
		n.having.WriteSQL(ctx)
	}
}

// Where sets the WHERE clause, replacing any earlier one.
func (n TableExpr) Where(cond SearchCondition) TableExpression {
	n.where = Where{cond: cond}
	return n
}

// GroupBy sets the GROUP BY clause, replacing any earlier one.
func (n TableExpr) GroupBy(list GroupingElementList) TableExpression {
	n.groupBy = GroupBy{list: list}
	return n
}

// Having sets the HAVING clause, replacing any earlier one.
func (n TableExpr) Having(cond SearchCondition) TableExpression {
	n.having = Having{cond: cond}
	return n
}

// TransformFrom replaces the FROM clause with f applied to it.
func (n TableExpr) TransformFrom(f func(FromClause) FromClause) TableExpression {
	n.from = f(n.from)
	return n
}

// TransformWhere replaces the WHERE clause with f applied to it.
func (n TableExpr) TransformWhere(f func(WhereClause) WhereClause) TableExpression {
	n.where = f(n.where)
	return n
}

// Quantifier is DISTINCT or ALL.
//
//sqlgen:symbol SetQuantifier
type Quantifier string

const (
	QuantifierDistinct Quantifier = "DISTINCT"
	QuantifierAll      Quantifier = "ALL"
)

func (n Quantifier) WriteSQL(ctx *Context) { ctx.WriteString(string(n)) }

// BeginSelect is a select list waiting for its FROM clause.
type BeginSelect struct {
	list SelectList
}

// Select starts a query over list.
func Select(list SelectList) BeginSelect {
	return BeginSelect{list: list}
}

// From completes the query with refs.
func (b BeginSelect) From(refs TableReferenceList) SelectStmt {
	return SelectStmt{quantifier: Blank{}, list: b.list, table: From{refs: refs}}
}

// SelectStmt is SELECT [quantifier] list table-expression.
//
//sqlgen:symbol QuerySpecification
type SelectStmt struct {
	quantifier SetQuantifier
	list       SelectList
	table      TableExpression
}

// An absent select list writes nothing, leaving an empty projection.
func (n SelectStmt) WriteSQL(ctx *Context) {
	ctx.WriteString("SELECT")
	if n.quantifier.presentSetQuantifier() {
		ctx.WriteString(" ")
		n.quantifier.WriteSQL(ctx)
	}
	if n.list.presentSelectList() {
		ctx.WriteString(" ")
		n.list.WriteSQL(ctx)
	}
	ctx.spaced(n.table)
}

// Distinct sets the DISTINCT quantifier.
func (n SelectStmt) Distinct() QuerySpecification {
	n.quantifier = QuantifierDistinct
	return n
}

// All sets the ALL quantifier.
func (n SelectStmt) All() QuerySpecification {
	n.quantifier = QuantifierAll
	return n
}

// Where sets the WHERE clause of the table expression.
func (n SelectStmt) Where(cond SearchCondition) QuerySpecification {
	n.table = n.table.Where(cond)
	return n
}

// GroupBy sets the GROUP BY clause of the table expression.
func (n SelectStmt) GroupBy(list GroupingElementList) QuerySpecification {
	n.table = n.table.GroupBy(list)
	return n
}

// Having sets the HAVING clause of the table expression.
func (n SelectStmt) Having(cond SearchCondition) QuerySpecification {
	n.table = n.table.Having(cond)
	return n
}

// TransformTableExpression replaces the table expression with f applied to it.
func (n SelectStmt) TransformTableExpression(f func(TableExpression) TableExpression) QuerySpecification {
	n.table = f(n.table)
	return n
}

// SubqueryExpr is a parenthesized query.
//
//sqlgen:symbol Subquery
type SubqueryExpr struct {
	query QueryExpression
}

// Sub wraps q in parentheses for use as a table or value.
func Sub(q QueryExpression) SubqueryExpr {
	return SubqueryExpr{query: q}
}

func (n SubqueryExpr) WriteSQL(ctx *Context) {
	ctx.WriteString("(")
	n.query.WriteSQL(ctx)
	ctx.WriteString(")")
}
