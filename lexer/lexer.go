// Package lexer turns noviq source text into a flat token sequence.
package lexer

import "fmt"

type Lexer struct {
	r *Reader

	curToken Token

	startLine int // Line where the current token started.
	startPos  int // Column where the current token started.

	done bool // Set once EOF has been emitted.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{r: NewReader(input)}
}

// NextToken returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() Token {
	if l.done {
		return l.eofToken()
	}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			if l.curToken.Type == TokEOF {
				l.done = true
			}
			return l.curToken
		}
	}
}

// Tokenize drains the lexer. The result always ends with exactly one EOF.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens
		}
	}
}

func (l *Lexer) eofToken() Token {
	return Token{Type: TokEOF, pos: l.r.linePos, line: l.r.line}
}

func (l *Lexer) thisToken(tt TokenType, value string) Token {
	return Token{
		Type:  tt,
		Value: value,
		pos:   l.startPos,
		line:  l.startLine,
	}
}

// markStart records the reader position as the start of the next token.
func (l *Lexer) markStart() {
	l.startLine = l.r.line
	l.startPos = l.r.linePos
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType, value string) stateFn {
	return l.emitToken(l.thisToken(tt, value))
}

// errorf emits an error token and drops the remaining input so the next
// token is EOF.
func (l *Lexer) errorf(format string, args ...any) stateFn {
	tok := l.thisToken(TokError, fmt.Sprintf(format, args...))
	for !l.r.AtEOF() {
		l.r.Advance()
	}
	return l.emitToken(tok)
}
