package calc

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		toks []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", "   ", nil},
		// numbers
		{"zero", "0", []Token{Number(0)}},
		{"digits", "9876543210", []Token{Number(9876543210)}},
		{"fraction", "1.5", []Token{Number(1.5)}},
		{"leading-dot", ".5", []Token{Number(0.5)}},
		{"trailing-dot", "2.", []Token{Number(2)}},
		{"two-numbers", "1 0", []Token{Number(1), Number(0)}},
		{"bad-dots", "1.2.3", nil},
		{"bad-dot", ".", nil},
		{"bad-dot-then-op", ". + 1", []Token{Plus, Number(1)}},
		{"overflow", "1" + strings.Repeat("0", 400), []Token{Number(math.Inf(1))}},
		// operators
		{"add", "2 + 2", []Token{Number(2), Plus, Number(2)}},
		{"add-tight", "2+2", []Token{Number(2), Plus, Number(2)}},
		{"all-ops", "1+2-3*4/5", []Token{Number(1), Plus, Number(2), Minus, Number(3), Multiply, Number(4), Divide, Number(5)}},
		{"op-only", "+", []Token{Plus}},
		{"ops", "--", []Token{Minus, Minus}},
		{"neg", "-1", []Token{Minus, Number(1)}},
		// grouping
		{"parens", "(1)", []Token{LeftParen, Number(1), RightParen}},
		{"nested", "2 + (3 * 4)", []Token{Number(2), Plus, LeftParen, Number(3), Multiply, Number(4), RightParen}},
		// ignored runes
		{"letters-join", "2a3", []Token{Number(23)}},
		{"letters", "x + y", []Token{Plus}},
		{"tab-joins", "1\t2", []Token{Number(12)}},
		{"newline-joins", "1\n2", []Token{Number(12)}},
		{"symbols", "1 ^ 2 % 3", []Token{Number(1), Number(2), Number(3)}},
		{"unicode", "3×4", []Token{Number(34)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.toks, Tokenize(c.src))
		})
	}
}

func TestTokenizeReader(t *testing.T) {
	toks, err := TokenizeReader(strings.NewReader("10 / 2"))
	require.NoError(t, err)
	assert.Equal(t, []Token{Number(10), Divide, Number(2)}, toks)
}

type failingScanner struct {
	io.RuneScanner
	err error
}

func (f failingScanner) ReadRune() (rune, int, error) {
	r, sz, err := f.RuneScanner.ReadRune()
	if errors.Is(err, io.EOF) {
		return 0, 0, f.err
	}
	return r, sz, err
}

func TestTokenizeReaderError(t *testing.T) {
	src := failingScanner{RuneScanner: strings.NewReader("1 + 2"), err: iotest.ErrTimeout}
	toks, err := TokenizeReader(src)
	require.ErrorIs(t, err, iotest.ErrTimeout)
	// The literal still pending at the failure is not flushed.
	assert.Equal(t, []Token{Number(1), Plus}, toks)
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Number(2), "2"},
		{Number(0.25), "0.25"},
		{Number(math.Inf(1)), "+Inf"},
		{Plus, "+"},
		{Minus, "-"},
		{Multiply, "*"},
		{Divide, "/"},
		{LeftParen, "("},
		{RightParen, ")"},
		{Token{}, "$None"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.tok.String())
	}
	assert.Equal(t, "RightParen", TokenRightParen.String())
	assert.Equal(t, "TokenKind(42)", TokenKind(42).String())
}

func TestTokenKindIsOperator(t *testing.T) {
	ops := map[TokenKind]bool{
		TokenNone:       false,
		TokenNumber:     false,
		TokenPlus:       true,
		TokenMinus:      true,
		TokenMultiply:   true,
		TokenDivide:     true,
		TokenLeftParen:  false,
		TokenRightParen: false,
	}
	for k, want := range ops {
		assert.Equal(t, want, k.IsOperator(), k.String())
	}
}
