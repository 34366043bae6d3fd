package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// eof is the sentinel rune held by the reader once the input is exhausted.
const eof rune = -1

// Reader is a character cursor over the source text.
type Reader struct {
	input string

	pos   int  // Byte offset of cur in input.
	width int  // Byte width of cur.
	cur   rune // Rune under the cursor, eof at end of input.

	line    int // Line of cur.
	linePos int // Column of cur.
}

// NewReader creates a Reader positioned on the first character of input.
func NewReader(input string) *Reader {
	r := &Reader{input: input, line: 1, linePos: 1}
	r.load()
	return r
}

func (r *Reader) load() {
	if r.pos >= len(r.input) {
		r.cur, r.width = eof, 0
		return
	}
	r.cur, r.width = utf8.DecodeRuneInString(r.input[r.pos:])
}

// Current returns the character under the cursor and false at end of input.
func (r *Reader) Current() (rune, bool) {
	return r.cur, r.cur != eof
}

// AtEOF reports whether the cursor is past the last character.
func (r *Reader) AtEOF() bool { return r.cur == eof }

// Advance moves the cursor to the next character.
func (r *Reader) Advance() {
	if r.cur == eof {
		return
	}
	if r.cur == '\n' {
		r.line++
		r.linePos = 0
	}
	r.pos += r.width
	r.linePos++
	r.load()
}

// Peek returns the character after the cursor without moving.
func (r *Reader) Peek() rune {
	next := r.pos + r.width
	if r.cur == eof || next >= len(r.input) {
		return eof
	}
	ch, _ := utf8.DecodeRuneInString(r.input[next:])
	return ch
}

// SkipWhitespace consumes spaces, tabs and carriage returns. Newlines are kept.
func (r *Reader) SkipWhitespace() {
	for r.cur == ' ' || r.cur == '\t' || r.cur == '\r' {
		r.Advance()
	}
}

// SkipComment consumes a '#' comment up to, but not including, the newline.
func (r *Reader) SkipComment() {
	if r.cur != '#' {
		return
	}
	for r.cur != eof && r.cur != '\n' {
		r.Advance()
	}
}

// ReadString consumes a literal delimited by the quote under the cursor and
// returns its unescaped content. The boolean is false when the input ended
// before the closing quote.
func (r *Reader) ReadString() (string, bool) {
	quote := r.cur
	r.Advance()

	var sb strings.Builder
	for r.cur != eof {
		switch r.cur {
		case quote:
			r.Advance()
			return sb.String(), true
		case '\\':
			r.Advance()
			if r.cur == eof {
				return sb.String(), false
			}
			switch r.cur {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"', '\'', '\\':
				sb.WriteRune(r.cur)
			default:
				sb.WriteByte('\\')
				sb.WriteRune(r.cur)
			}
			r.Advance()
		default:
			sb.WriteRune(r.cur)
			r.Advance()
		}
	}
	return sb.String(), false
}

// ReadNumber accumulates digits and dots and parses them. Malformed input such
// as "1.2.3" yields zero.
func (r *Reader) ReadNumber() (string, float64) {
	start := r.pos
	for isDigit(r.cur) || r.cur == '.' {
		r.Advance()
	}
	lexeme := r.input[start:r.pos]
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return lexeme, 0
	}
	return lexeme, n
}

// ReadIdentifier accumulates letters, digits and underscores. The caller has
// already checked the first character.
func (r *Reader) ReadIdentifier() string {
	start := r.pos
	for isIdentChar(r.cur) {
		r.Advance()
	}
	return r.input[start:r.pos]
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentChar(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}
