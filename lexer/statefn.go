package lexer

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'\n': TokNewline,
	'(':  TokParenLeft,
	')':  TokParenRight,
	'=':  TokAssign,
	',':  TokComma,
}

func lexText(l *Lexer) stateFn {
	l.r.SkipWhitespace()
	l.markStart()

	r, ok := l.r.Current()
	switch {
	case !ok:
		return l.emitToken(l.eofToken())
	case r == '#':
		return lexComment
	case r == '"', r == '\'':
		return lexString
	case isIdentStart(r):
		return lexIdentifier
	case isDigit(r):
		return lexNumber
	}
	if tok, ok := singles[r]; ok {
		l.r.Advance()
		return l.emit(tok, string(r))
	}
	// Anything else is dropped.
	l.r.Advance()
	return lexText
}

func lexComment(l *Lexer) stateFn {
	l.r.SkipComment()
	if l.r.AtEOF() {
		return l.emitToken(l.eofToken())
	}
	// The reader stops on the newline, which still separates statements.
	return lexText
}

func lexString(l *Lexer) stateFn {
	value, closed := l.r.ReadString()
	if !closed {
		return l.errorf("unterminated string literal")
	}
	return l.emit(TokString, value)
}

func lexNumber(l *Lexer) stateFn {
	lexeme, n := l.r.ReadNumber()
	tok := l.thisToken(TokNumber, lexeme)
	tok.Number = n
	return l.emitToken(tok)
}

func lexIdentifier(l *Lexer) stateFn {
	ident := l.r.ReadIdentifier()
	if kw, ok := keywords[ident]; ok {
		return l.emit(kw, ident)
	}
	return l.emit(TokIdentifier, ident)
}
