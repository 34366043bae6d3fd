package ast

// LetStmt binds Name to the value of Value, overwriting any previous binding.
type LetStmt struct {
	Name  string
	Value Expr
}

func (LetStmt) stmt() {}

func (s LetStmt) Dump() string { return "let " + s.Name + " = " + s.Value.Dump() }

type ExpressionStmt struct {
	Expression Expr
}

func (ExpressionStmt) stmt() {}

func (s ExpressionStmt) Dump() string { return s.Expression.Dump() }
