package typedsql

// Blank stands in for any optional clause that is not present. It renders
// nothing and reports itself absent. Adding to a Blank list or clause yields a
// new, present node.
type Blank struct{}

func (Blank) WriteSQL(*Context) {}

// AddFrom starts a FROM clause with ref.
func (Blank) AddFrom(ref TableReference) FromClause {
	return From{refs: ref}
}

func (Blank) table() TableExpr {
	return TableExpr{from: Blank{}, where: Blank{}, groupBy: Blank{}, having: Blank{}}
}

// Where starts a table expression with only a WHERE clause.
func (b Blank) Where(cond SearchCondition) TableExpression {
	return b.table().Where(cond)
}

// GroupBy starts a table expression with only a GROUP BY clause.
func (b Blank) GroupBy(list GroupingElementList) TableExpression {
	return b.table().GroupBy(list)
}

// Having starts a table expression with only a HAVING clause.
func (b Blank) Having(cond SearchCondition) TableExpression {
	return b.table().Having(cond)
}

// TransformFrom returns f applied to the absent FROM clause.
func (b Blank) TransformFrom(f func(FromClause) FromClause) TableExpression {
	return f(b)
}

// TransformWhere starts a table expression whose WHERE clause is f(Blank{}).
func (b Blank) TransformWhere(f func(WhereClause) WhereClause) TableExpression {
	return b.table().TransformWhere(f)
}
