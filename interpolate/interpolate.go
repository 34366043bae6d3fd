// Package interpolate expands {name} references inside string values.
//
// A reference is an identifier between braces. "{{" and "}}" are literal
// braces, and a lone "}" is kept as is. Substituted text is not rescanned.
package interpolate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrUnclosed    = errors.New("Unclosed variable interpolation: missing '}'")
	ErrEmptyName   = errors.New("Empty variable name in interpolation")
	ErrInvalidChar = errors.New("Invalid character in variable name")
)

// Stream is the list of tokens produced by scanning a string.
type Stream []Token

// Token is the interface that every token must implement.
type Token interface {
	token()
}

// Literal is text copied to the output unchanged.
type Literal struct {
	Value string
}

func (Literal) token() {}

// Variable is a reference to be resolved at expansion time.
type Variable struct {
	Name string
}

func (Variable) token() {}

// Parse scans s into a Stream. On error the tokens scanned before the
// offending reference are returned along with it.
func Parse(s string) (Stream, error) {
	var (
		stream Stream
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			stream = append(stream, Literal{Value: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '{' && i+1 < len(runes) && runes[i+1] == '{':
			lit.WriteRune('{')
			i++
		case ch == '}' && i+1 < len(runes) && runes[i+1] == '}':
			lit.WriteRune('}')
			i++
		case ch == '{':
			name, n, err := scanName(runes[i+1:])
			if err != nil {
				flush()
				return stream, err
			}
			flush()
			stream = append(stream, Variable{Name: name})
			i += n
		default:
			lit.WriteRune(ch)
		}
	}
	flush()
	return stream, nil
}

// scanName reads a reference name up to and including the closing brace and
// returns the number of runes consumed.
func scanName(runes []rune) (string, int, error) {
	for i, ch := range runes {
		switch {
		case ch == '}':
			if i == 0 {
				return "", 0, ErrEmptyName
			}
			return string(runes[:i]), i + 1, nil
		case ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch):
		default:
			return "", 0, fmt.Errorf("%w: %c", ErrInvalidChar, ch)
		}
	}
	return "", 0, ErrUnclosed
}

// Expand substitutes every reference in s with the text returned by resolve.
// References are resolved left to right; the first failure, whether from
// resolve or from a malformed reference, is returned.
func Expand(s string, resolve func(name string) (string, error)) (string, error) {
	stream, perr := Parse(s)

	var sb strings.Builder
	for _, tok := range stream {
		switch tok := tok.(type) {
		case Literal:
			sb.WriteString(tok.Value)
		case Variable:
			v, err := resolve(tok.Name)
			if err != nil {
				return "", err
			}
			sb.WriteString(v)
		}
	}
	if perr != nil {
		return "", perr
	}
	return sb.String(), nil
}
