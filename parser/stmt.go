package parser

import (
	"go.creack.net/noviq/ast"
	"go.creack.net/noviq/lexer"
)

func parseStmt(p *parser) ast.Stmt {
	stmtFn, exists := p.stmtLookupTable[p.curToken.Type]
	if exists {
		return stmtFn(p)
	}

	expression := parseExpr(p)
	p.skipOptionalNewline()

	return ast.ExpressionStmt{
		Expression: expression,
	}
}

// parseLetStmt parses `let IDENT = expr`.
func parseLetStmt(p *parser) ast.Stmt {
	p.nextToken() // Consume 'let'.

	name := p.expect(lexer.TokIdentifier, "Expected identifier after 'let'").Value
	p.nextToken()

	p.expect(lexer.TokAssign, "Expected '=' after variable name")
	p.nextToken()

	value := parseExpr(p)
	p.skipOptionalNewline()

	return ast.LetStmt{
		Name:  name,
		Value: value,
	}
}
