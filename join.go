package typedsql

// JoinKind is the INNER join type.
//
//sqlgen:symbol JoinType
type JoinKind string

// JoinInner renders INNER.
const JoinInner JoinKind = "INNER"

func (n JoinKind) WriteSQL(ctx *Context) { ctx.WriteString(string(n)) }

// OuterJoinKind is an outer join type.
//
//sqlgen:symbol OuterJoinType
type OuterJoinKind string

const (
	JoinLeft       OuterJoinKind = "LEFT"
	JoinRight      OuterJoinKind = "RIGHT"
	JoinFull       OuterJoinKind = "FULL"
	JoinLeftOuter  OuterJoinKind = "LEFT OUTER"
	JoinRightOuter OuterJoinKind = "RIGHT OUTER"
	JoinFullOuter  OuterJoinKind = "FULL OUTER"
)

func (n OuterJoinKind) WriteSQL(ctx *Context) { ctx.WriteString(string(n)) }

// CrossJoinExpr is left CROSS JOIN dest.
//
//sqlgen:symbol CrossJoin
type CrossJoinExpr struct {
	left TableReference
	dest TablePrimary
}

func (n CrossJoinExpr) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" CROSS JOIN ")
	n.dest.WriteSQL(ctx)
}

func crossJoin(left TableReference, dest TablePrimary) CrossJoin {
	return CrossJoinExpr{left: left, dest: dest}
}

// QualifiedJoinFragment is a join still waiting for its ON or USING clause.
type QualifiedJoinFragment struct {
	left TableReference
	kind JoinType
	dest TableReference
}

// On completes the join with a search condition.
func (f QualifiedJoinFragment) On(cond SearchCondition) QualifiedJoinExpr {
	return f.with(OnCondition{cond: cond})
}

// Using completes the join with a list of shared column names.
func (f QualifiedJoinFragment) Using(cols JoinColumnList) QualifiedJoinExpr {
	return f.with(UsingColumns{cols: cols})
}

func (f QualifiedJoinFragment) with(spec JoinSpecification) QualifiedJoinExpr {
	return QualifiedJoinExpr{left: f.left, kind: f.kind, dest: f.dest, spec: spec}
}

func join(left, dest TableReference) QualifiedJoinFragment {
	return joinWith(left, Blank{}, dest)
}

func innerJoin(left, dest TableReference) QualifiedJoinFragment {
	return joinWith(left, JoinInner, dest)
}

func leftJoin(left, dest TableReference) QualifiedJoinFragment {
	return joinWith(left, JoinLeft, dest)
}

func rightJoin(left, dest TableReference) QualifiedJoinFragment {
	return joinWith(left, JoinRight, dest)
}

func fullJoin(left, dest TableReference) QualifiedJoinFragment {
	return joinWith(left, JoinFull, dest)
}

func joinWith(left TableReference, kind JoinType, dest TableReference) QualifiedJoinFragment {
	return QualifiedJoinFragment{left: left, kind: kind, dest: dest}
}

// QualifiedJoinExpr is left [kind] JOIN dest followed by ON or USING.
//
//sqlgen:symbol QualifiedJoin
type QualifiedJoinExpr struct {
	left TableReference
	kind JoinType
	dest TableReference
	spec JoinSpecification
}

func (n QualifiedJoinExpr) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" ")
	if n.kind.presentJoinType() {
		n.kind.WriteSQL(ctx)
		ctx.WriteString(" ")
	}
	ctx.WriteString("JOIN ")
	n.dest.WriteSQL(ctx)
	ctx.WriteString(" ")
	n.spec.WriteSQL(ctx)
}

// OnCondition is ON cond.
//
//sqlgen:symbol JoinCondition
type OnCondition struct {
	cond SearchCondition
}

func (n OnCondition) WriteSQL(ctx *Context) {
	ctx.WriteString("ON ")
	n.cond.WriteSQL(ctx)
}

// UsingColumns is USING (cols).
//
//sqlgen:symbol NamedColumnsJoin
type UsingColumns struct {
	cols JoinColumnList
}

func (n UsingColumns) WriteSQL(ctx *Context) {
	ctx.WriteString("USING (")
	n.cols.WriteSQL(ctx)
	ctx.WriteString(")")
}

// NaturalJoinExpr is left NATURAL JOIN dest.
//
//sqlgen:symbol NaturalJoin
type NaturalJoinExpr struct {
	left TableReference
	dest TablePrimary
}

func (n NaturalJoinExpr) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" NATURAL JOIN ")
	n.dest.WriteSQL(ctx)
}

func naturalJoin(left TableReference, dest TablePrimary) NaturalJoin {
	return NaturalJoinExpr{left: left, dest: dest}
}

// UnionJoinExpr is left UNION JOIN dest.
//
//sqlgen:symbol UnionJoin
type UnionJoinExpr struct {
	left TableReference
	dest TablePrimary
}

func (n UnionJoinExpr) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" UNION JOIN ")
	n.dest.WriteSQL(ctx)
}

func unionJoin(left TableReference, dest TablePrimary) UnionJoin {
	return UnionJoinExpr{left: left, dest: dest}
}
