package typedsql

// Comparison compares two row value predicands.
//
//sqlgen:symbol ComparisonPredicate
type Comparison struct {
	left  RowValuePredicand
	op    string
	right RowValuePredicand
}

func (n Comparison) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" " + n.op + " ")
	n.right.WriteSQL(ctx)
}

func compare(l RowValuePredicand, op string, r RowValuePredicand) Comparison {
	return Comparison{left: l, op: op, right: r}
}

// Eq renders l = r.
func Eq(l, r RowValuePredicand) Comparison { return compare(l, "=", r) }

// Neq renders l <> r.
func Neq(l, r RowValuePredicand) Comparison { return compare(l, "<>", r) }

// Lt renders l < r.
func Lt(l, r RowValuePredicand) Comparison { return compare(l, "<", r) }

// Lte renders l <= r.
func Lte(l, r RowValuePredicand) Comparison { return compare(l, "<=", r) }

// Gt renders l > r.
func Gt(l, r RowValuePredicand) Comparison { return compare(l, ">", r) }

// Gte renders l >= r.
func Gte(l, r RowValuePredicand) Comparison { return compare(l, ">=", r) }

// Conjunction is l AND r.
//
//sqlgen:symbol BooleanTerm
type Conjunction struct {
	left  BooleanTerm
	right BooleanFactor
}

// And joins two conditions with AND.
func And(l BooleanTerm, r BooleanFactor) Conjunction {
	return Conjunction{left: l, right: r}
}

func (n Conjunction) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" AND ")
	n.right.WriteSQL(ctx)
}

func conjoin(l BooleanTerm, r BooleanFactor) BooleanTerm {
	return And(l, r)
}

// Disjunction is l OR r.
//
//sqlgen:symbol BooleanValueExpression
type Disjunction struct {
	left  SearchCondition
	right BooleanTerm
}

// Or joins two conditions with OR.
func Or(l SearchCondition, r BooleanTerm) Disjunction {
	return Disjunction{left: l, right: r}
}

func (n Disjunction) WriteSQL(ctx *Context) {
	n.left.WriteSQL(ctx)
	ctx.WriteString(" OR ")
	n.right.WriteSQL(ctx)
}

func disjoin(l SearchCondition, r BooleanTerm) BooleanValueExpression {
	return Or(l, r)
}

// Negation is NOT t.
//
//sqlgen:symbol BooleanFactor
type Negation struct {
	test BooleanTest
}

// Not negates a condition.
func Not(t BooleanTest) Negation {
	return Negation{test: t}
}

func (n Negation) WriteSQL(ctx *Context) {
	ctx.WriteString("NOT ")
	n.test.WriteSQL(ctx)
}

func negate(t BooleanTest) BooleanFactor {
	return Not(t)
}

// TruthTest is p IS [NOT] v.
//
//sqlgen:symbol BooleanTest
type TruthTest struct {
	primary BooleanPrimary
	value   TruthValue
	not     bool
}

// Is tests p against a truth value.
func Is(p BooleanPrimary, v TruthValue) TruthTest {
	return TruthTest{primary: p, value: v}
}

// IsNot tests p against the negation of a truth value.
func IsNot(p BooleanPrimary, v TruthValue) TruthTest {
	return TruthTest{primary: p, value: v, not: true}
}

func (n TruthTest) WriteSQL(ctx *Context) {
	n.primary.WriteSQL(ctx)
	if n.not {
		ctx.WriteString(" IS NOT ")
	} else {
		ctx.WriteString(" IS ")
	}
	n.value.WriteSQL(ctx)
}

func isTruth(p BooleanPrimary, v TruthValue) BooleanTest {
	return Is(p, v)
}

func isNotTruth(p BooleanPrimary, v TruthValue) BooleanTest {
	return IsNot(p, v)
}

// NestedCondition is a parenthesized search condition.
//
//sqlgen:symbol ParenthesizedBooleanValueExpression
type NestedCondition struct {
	cond SearchCondition
}

// Nest wraps c in parentheses.
func Nest(c SearchCondition) NestedCondition {
	return NestedCondition{cond: c}
}

func (n NestedCondition) WriteSQL(ctx *Context) {
	ctx.WriteString("(")
	n.cond.WriteSQL(ctx)
	ctx.WriteString(")")
}

func nest(c SearchCondition) ParenthesizedBooleanValueExpression {
	return Nest(c)
}
