package lexer

import (
	"fmt"
	"slices"
	"strconv"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Keywords.
	TokLet
	TokTrue
	TokFalse

	// Identifiers + literals.
	TokIdentifier
	TokString
	TokNumber

	// Operators.
	TokAssign

	// Delimiters.
	TokNewline
	TokComma
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokLet:   "LET",
	TokTrue:  "TRUE",
	TokFalse: "FALSE",

	TokIdentifier: "IDENTIFIER",
	TokString:     "STRING",
	TokNumber:     "NUMBER",

	TokAssign: "ASSIGN",

	TokNewline:    "NEWLINE",
	TokComma:      "COMMA",
	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

// keywords maps reserved words to their token type.
var keywords = map[string]TokenType{
	"let":   TokLet,
	"true":  TokTrue,
	"false": TokFalse,
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token.
// Value holds the identifier name, the unescaped string content, the raw
// number lexeme or the error message. Number holds the parsed numeric value.
type Token struct {
	Type   TokenType
	Value  string
	Number float64

	pos  int
	line int
}

// Line returns the 1-based line the token starts on.
func (t Token) Line() int { return t.line }

// Pos returns the 1-based column of the token's first character.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return t.errorString()
	case TokNumber:
		return fmt.Sprintf("%s[%d:%d]: %s", t.Type, t.line, t.pos, strconv.FormatFloat(t.Number, 'f', -1, 64))
	case TokIdentifier, TokString:
		if len(t.Value) > 16 {
			return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.line, t.pos, t.Value)
		}
		return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.line, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]", t.Type, t.line, t.pos)
}

// Lexeme returns the token as it would appear in source, for error messages.
func (t Token) Lexeme() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokNewline:
		return "newline"
	case TokString:
		return strconv.Quote(t.Value)
	case TokNumber:
		return strconv.FormatFloat(t.Number, 'f', -1, 64)
	case TokIdentifier:
		return t.Value
	case TokLet:
		return "let"
	case TokTrue:
		return "true"
	case TokFalse:
		return "false"
	case TokAssign:
		return "'='"
	case TokComma:
		return "','"
	case TokParenLeft:
		return "'('"
	case TokParenRight:
		return "')'"
	}
	return t.Value
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d:%d]: %s", t.line, t.pos, t.Value)
}
