package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	toks []Token
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// run scans the entire input. The only errors are those from the source
// other than io.EOF.
func (l *lexer) run() ([]Token, error) {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return l.toks, err
		}
		switch r {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			l.buf.WriteRune(r)
		case '+':
			l.emit(Plus)
		case '-':
			l.emit(Minus)
		case '*':
			l.emit(Multiply)
		case '/':
			l.emit(Divide)
		case '(':
			l.emit(LeftParen)
		case ')':
			l.emit(RightParen)
		case ' ':
			l.flush()
		default:
			// Anything else is skipped without ending the pending number, so
			// "2a3" is 23.
		}
	}
	l.flush()
	return l.toks, nil
}

// emit flushes the pending number, then appends tok.
func (l *lexer) emit(tok Token) {
	l.flush()
	l.toks = append(l.toks, tok)
}

// flush appends the pending number, if there is one and it parses, and clears
// the buffer. Unparsable literals like "1.2.3" are dropped.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	defer l.buf.Reset()
	f, err := strconv.ParseFloat(l.buf.String(), 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Too large. f is already +Inf.
	default:
		return
	}
	l.toks = append(l.toks, Number(f))
}

// Tokenize splits an expression into tokens. It never fails: runes that are
// not digits, dots, operators, parentheses, or spaces are ignored, and
// numeric literals that do not parse are dropped.
func Tokenize(src string) []Token {
	// Reading from a strings.Reader never fails.
	toks, _ := lex(strings.NewReader(src)).run()
	return toks
}

// TokenizeReader is like Tokenize but reads the expression from src. The
// returned error is any error from src other than io.EOF, along with the
// tokens scanned up to that point.
func TokenizeReader(src io.RuneScanner) ([]Token, error) {
	return lex(src).run()
}
