package parser

import (
	"go.creack.net/noviq/ast"
	"go.creack.net/noviq/lexer"
)

func parseExpr(p *parser) ast.Expr {
	if p.curToken.Type == lexer.TokError {
		p.errorf("%s", p.curToken.Value)
	}
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		p.errorf("Unexpected token in expression: %s", p.curToken.Lexeme())
	}
	return nudFn(p)
}

func parsePrimaryExpr(p *parser) ast.Expr {
	tok := p.curToken
	p.nextToken()

	switch tok.Type {
	case lexer.TokString:
		return ast.StringExpr{Value: tok.Value}
	case lexer.TokNumber:
		return ast.NumberExpr{Value: tok.Number}
	case lexer.TokTrue:
		return ast.BooleanExpr{Value: true}
	case lexer.TokFalse:
		return ast.BooleanExpr{Value: false}
	}
	panic("unreachable: no primary handler for " + tok.Type.String())
}

// parseCallExpr parses `IDENT ( [ expr { , expr } ] )`. A bare identifier is
// not an expression.
func parseCallExpr(p *parser) ast.Expr {
	name := p.curToken.Value
	p.nextToken()

	p.expect(lexer.TokParenLeft, "Expected '(' after identifier '%s'", name)
	p.nextToken()

	var args []ast.Expr
	if p.curToken.Type != lexer.TokParenRight {
		args = append(args, parseExpr(p))
		for p.curToken.Type == lexer.TokComma {
			p.nextToken()
			args = append(args, parseExpr(p))
		}
	}

	p.expect(lexer.TokParenRight, "Expected ')', got %s", p.curToken.Lexeme())
	p.nextToken()

	return ast.CallExpr{
		Name: name,
		Args: args,
	}
}
