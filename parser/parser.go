// Package parser builds an ast.Program from a noviq token sequence.
package parser

import (
	"errors"
	"fmt"
	"io"

	"go.creack.net/noviq/ast"
	"go.creack.net/noviq/executor"
	"go.creack.net/noviq/lexer"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// Error is a parse error located at the offending token.
type Error struct {
	Tok lexer.Token
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Tok.Line(), e.Msg)
}

func (e *Error) Unwrap() error { return ErrSyntax }

type parser struct {
	tokens []lexer.Token
	pos    int

	prevToken lexer.Token
	curToken  lexer.Token

	nudLookupTable  lookupTable[nudHandler]
	stmtLookupTable lookupTable[stmtHandler]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens:          tokens,
		pos:             -1,
		nudLookupTable:  lookupTable[nudHandler]{},
		stmtLookupTable: lookupTable[stmtHandler]{},
	}
	p.createTokenLookups()
	p.nextToken()
	return p
}

// Parse consumes tokens up to EOF. The first error aborts the parse and no
// partial program is returned.
func Parse(tokens []lexer.Token) (prog ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			prog, err = ast.Program{}, perr
		}
	}()

	p := newParser(tokens)
	var stmts []ast.Stmt

	p.ignoreNewlines()
	for p.curToken.Type != lexer.TokEOF {
		stmts = append(stmts, parseStmt(p))
		p.ignoreNewlines()
	}

	return ast.Program{Stmts: stmts}, nil
}

// ParseString tokenizes and parses src.
func ParseString(src string) (ast.Program, error) {
	return Parse(lexer.Tokenize(src))
}

// Run parses the whole input and executes it with a fresh interpreter.
// Errors are reported on stderr and returned.
func Run(input, stdin io.Reader, stdout, stderr io.Writer, opts ...executor.Option) error {
	src, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	prog, err := ParseString(string(src))
	if err != nil {
		if stderr != nil {
			fmt.Fprintf(stderr, "noviq: %s\n", err)
		}
		return err
	}
	opts = append([]executor.Option{
		executor.WithStdin(stdin),
		executor.WithStdout(stdout),
	}, opts...)
	if err := executor.New(opts...).Execute(prog.Stmts); err != nil {
		if stderr != nil {
			fmt.Fprintf(stderr, "noviq: %s\n", err)
		}
		return err
	}
	return nil
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.pos < len(p.tokens)-1 {
		p.pos++
		p.curToken = p.tokens[p.pos]
	} else if len(p.tokens) == 0 || p.curToken.Type != lexer.TokEOF {
		// Ran past the end of a sequence that was not EOF-terminated.
		p.curToken = lexer.Token{Type: lexer.TokEOF}
	}
	return p.curToken
}

func (p *parser) errorf(format string, args ...any) {
	panic(&Error{Tok: p.curToken, Msg: fmt.Sprintf(format, args...)})
}

// expect checks if the current token is of the expected type and aborts the
// parse with the given message otherwise. A lexical error is reported as is.
func (p *parser) expect(kind lexer.TokenType, format string, args ...any) lexer.Token {
	if p.curToken.Type == kind {
		return p.curToken
	}
	if p.curToken.Type == lexer.TokError {
		p.errorf("%s", p.curToken.Value)
	}
	p.errorf(format, args...)
	return lexer.Token{}
}

func (p *parser) ignoreNewlines() {
	for p.curToken.Type == lexer.TokNewline {
		p.nextToken()
	}
}

// skipOptionalNewline consumes one statement terminator if present.
func (p *parser) skipOptionalNewline() {
	if p.curToken.Type == lexer.TokNewline {
		p.nextToken()
	}
}
