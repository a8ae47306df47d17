package typedsql

// InsertFragment is an INSERT target waiting for its source.
type InsertFragment struct {
	target   InsertionTarget
	columns  InsertColumnList
	override OverrideClause
}

// InsertInto starts an INSERT into target.
func InsertInto(target InsertionTarget) InsertFragment {
	return InsertFragment{target: target, columns: Blank{}, override: Blank{}}
}

// Columns sets the insert column list.
func (f InsertFragment) Columns(cols InsertColumnList) InsertFragment {
	f.columns = cols
	return f
}

// Override sets the OVERRIDING clause.
func (f InsertFragment) Override(o OverrideClause) InsertFragment {
	f.override = o
	return f
}

// Values completes the statement with explicit rows.
func (f InsertFragment) Values(rows ContextuallyTypedRowValueExpressionList) InsertStmt {
	return f.into(ValuesSource{columns: f.columns, override: f.override, values: Values{rows: rows}})
}

// Query completes the statement with the rows of q.
func (f InsertFragment) Query(q QueryExpression) InsertStmt {
	return f.into(QuerySource{columns: f.columns, override: f.override, query: q})
}

// DefaultValues completes the statement with DEFAULT VALUES. The column list
// and override clause are dropped.
func (f InsertFragment) DefaultValues() InsertStmt {
	return f.into(DefaultSource{})
}

func (f InsertFragment) into(src InsertColumnsAndSources) InsertStmt {
	return InsertStmt{target: f.target, source: src}
}

// InsertStmt is INSERT INTO target source.
//
//sqlgen:symbol Insert
type InsertStmt struct {
	target InsertionTarget
	source InsertColumnsAndSources
}

func (n InsertStmt) WriteSQL(ctx *Context) {
	ctx.WriteString("INSERT INTO ")
	n.target.WriteSQL(ctx)
	if n.source.presentInsertColumnsAndSources() {
		ctx.WriteString(" ")
		n.source.WriteSQL(ctx)
	}
}

// TransformTarget replaces the target with f applied to it.
func (n InsertStmt) TransformTarget(f func(InsertionTarget) InsertionTarget) Insert {
	n.target = f(n.target)
	return n
}

// TransformSource replaces the source with f applied to it.
func (n InsertStmt) TransformSource(f func(InsertColumnsAndSources) InsertColumnsAndSources) Insert {
	n.source = f(n.source)
	return n
}

func writeColumnsAndOverride(ctx *Context, cols InsertColumnList, o OverrideClause) {
	if cols.presentInsertColumnList() {
		ctx.WriteString("(")
		cols.WriteSQL(ctx)
		ctx.WriteString(") ")
	}
	if o.presentOverrideClause() {
		o.WriteSQL(ctx)
		ctx.WriteString(" ")
	}
}

// ValuesSource is [(columns)] [override] VALUES rows.
//
//sqlgen:symbol FromConstructor
type ValuesSource struct {
	columns  InsertColumnList
	override OverrideClause
	values   ContextuallyTypedTableValueConstructor
}

func (n ValuesSource) WriteSQL(ctx *Context) {
	writeColumnsAndOverride(ctx, n.columns, n.override)
	n.values.WriteSQL(ctx)
}

// QuerySource is [(columns)] [override] query.
//
//sqlgen:symbol FromSubQuery
type QuerySource struct {
	columns  InsertColumnList
	override OverrideClause
	query    QueryExpression
}

func (n QuerySource) WriteSQL(ctx *Context) {
	writeColumnsAndOverride(ctx, n.columns, n.override)
	n.query.WriteSQL(ctx)
}

// DefaultSource is DEFAULT VALUES.
//
//sqlgen:symbol FromDefault
type DefaultSource struct{}

func (DefaultSource) WriteSQL(ctx *Context) {
	ctx.WriteString("DEFAULT VALUES")
}

// Values is VALUES rows.
//
//sqlgen:symbol ContextuallyTypedTableValueConstructor
type Values struct {
	rows ContextuallyTypedRowValueExpressionList
}

func (n Values) WriteSQL(ctx *Context) {
	ctx.WriteString("VALUES ")
	n.rows.WriteSQL(ctx)
}

// OverridingUser is OVERRIDING USER VALUE.
//
//sqlgen:symbol OverridingUserValue
type OverridingUser struct{}

func (OverridingUser) WriteSQL(ctx *Context) {
	ctx.WriteString("OVERRIDING USER VALUE")
}

// OverridingSystem is OVERRIDING SYSTEM VALUE.
//
//sqlgen:symbol OverridingSystemValue
type OverridingSystem struct{}

func (OverridingSystem) WriteSQL(ctx *Context) {
	ctx.WriteString("OVERRIDING SYSTEM VALUE")
}
