package parser

import (
	"go.creack.net/noviq/ast"
	"go.creack.net/noviq/lexer"
)

type stmtHandler func(*parser) ast.Stmt
type nudHandler func(*parser) ast.Expr

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) stmt(kind lexer.TokenType, fn stmtHandler) {
	if _, ok := p.stmtLookupTable[kind]; ok {
		panic("duplicate stmt handler")
	}
	p.stmtLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Statements.
	p.stmt(lexer.TokLet, parseLetStmt)

	// Literals.
	p.nud(lexer.TokString, parsePrimaryExpr)
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokTrue, parsePrimaryExpr)
	p.nud(lexer.TokFalse, parsePrimaryExpr)

	// Calls.
	p.nud(lexer.TokIdentifier, parseCallExpr)
}
