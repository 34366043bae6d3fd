// Package ast defines the expression and statement nodes produced by the parser.
package ast

import "strings"

// Expr is implemented by every expression node.
type Expr interface {
	Dump() string
	expr()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Dump() string
	stmt()
}

// Program is an ordered list of statements.
type Program struct {
	Stmts []Stmt
}

func (p Program) Dump() string {
	var sb strings.Builder
	for _, stmt := range p.Stmts {
		sb.WriteString(stmt.Dump())
		sb.WriteByte('\n')
	}
	return sb.String()
}
