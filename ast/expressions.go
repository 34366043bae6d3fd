package ast

import (
	"strconv"
	"strings"
)

type StringExpr struct {
	Value string
}

func (StringExpr) expr() {}

func (e StringExpr) Dump() string { return strconv.Quote(e.Value) }

type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (e NumberExpr) Dump() string { return strconv.FormatFloat(e.Value, 'f', -1, 64) }

type BooleanExpr struct {
	Value bool
}

func (BooleanExpr) expr() {}

func (e BooleanExpr) Dump() string { return strconv.FormatBool(e.Value) }

// IdentifierExpr references a variable. The parser never produces a bare
// one; interpolation builds them to look names up.
type IdentifierExpr struct {
	Name string
}

func (IdentifierExpr) expr() {}

func (e IdentifierExpr) Dump() string { return e.Name }

// CallExpr invokes a builtin by name. Args are handed to the builtin
// unevaluated.
type CallExpr struct {
	Name string
	Args []Expr
}

func (CallExpr) expr() {}

func (e CallExpr) Dump() string {
	args := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		args = append(args, arg.Dump())
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}
