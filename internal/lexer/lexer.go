package lexer

import (
	"fmt"

	"github.com/proteomelab/go-proforma/internal/token"
)

// Lexer holds the state for tokenizing a ProForma string. The notation is a
// single line, so token positions are byte offsets.
type Lexer struct {
	input string
	pos   int
}

// New creates and returns a new Lexer.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken scans the input and returns the next token. Bracketed payloads
// ([...], {...}, <...>) are returned whole with their delimiters stripped;
// the parser interprets the payload text.
func (l *Lexer) NextToken() token.Token {
	tok := token.Token{Pos: l.pos}
	if l.pos >= len(l.input) {
		tok.Type = token.EOF
		return tok
	}

	ch := l.input[l.pos]
	switch ch {
	case '[':
		lit, ok := l.readBracketed('[', ']')
		if !ok {
			tok.Type = token.ILLEGAL
		} else {
			tok.Type = token.TAG
		}
		tok.Literal = lit
		return tok
	case '{':
		lit, ok := l.readBracketed('{', '}')
		if !ok {
			tok.Type = token.ILLEGAL
		} else {
			tok.Type = token.LABILE
		}
		tok.Literal = lit
		return tok
	case '<':
		lit, ok := l.readAngle()
		if !ok {
			tok.Type = token.ILLEGAL
		} else {
			tok.Type = token.GLOBAL
		}
		tok.Literal = lit
		return tok
	case '-':
		tok.Type = token.DASH
	case '/':
		tok.Type = token.SLASH
	case '^':
		tok.Type = token.CARET
	case '?':
		tok.Type = token.QUESTION
	default:
		if isDigit(ch) {
			tok.Type = token.INT
			tok.Literal = l.readDigits()
			return tok
		}
		if isLetter(ch) {
			tok.Type = token.RESIDUE
			tok.Literal = string(ch)
			l.pos++
			return tok
		}
		tok.Type = token.ILLEGAL
		tok.Literal = string(ch)
		l.pos++
		return tok
	}
	tok.Literal = string(ch)
	l.pos++
	return tok
}

// readBracketed consumes a delimited payload, tracking nesting depth so tag
// text may itself contain balanced delimiters.
func (l *Lexer) readBracketed(open, close byte) (string, bool) {
	start := l.pos
	depth := 0
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				lit := l.input[start+1 : l.pos]
				l.pos++
				return lit, true
			}
		}
		l.pos++
	}
	return fmt.Sprintf("unterminated %q", string(open)), false
}

// readAngle consumes a global annotation. Angle payloads contain bracketed
// tags ("<[Carbamidomethyl]@C>") whose text must not end the annotation.
func (l *Lexer) readAngle() (string, bool) {
	start := l.pos
	l.pos++ // consume '<'
	inBracket := false
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '[':
			inBracket = true
		case ']':
			inBracket = false
		case '>':
			if !inBracket {
				lit := l.input[start+1 : l.pos]
				l.pos++
				return lit, true
			}
		}
		l.pos++
	}
	return `unterminated "<"`, false
}

func (l *Lexer) readDigits() string {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
