package calc

import "strconv"

// TokenKind identifies the type of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota

	TokenNumber // Value holds the number

	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide

	TokenLeftParen
	TokenRightParen
)

var kindnames = [...]string{
	TokenNone:       "None",
	TokenNumber:     "Number",
	TokenPlus:       "Plus",
	TokenMinus:      "Minus",
	TokenMultiply:   "Multiply",
	TokenDivide:     "Divide",
	TokenLeftParen:  "LeftParen",
	TokenRightParen: "RightParen",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// IsOperator returns whether k is one of the four binary operators.
func (k TokenKind) IsOperator() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenMultiply, TokenDivide:
		return true
	}
	return false
}

// Token is a lexical unit of an expression. Only number tokens carry a value.
type Token struct {
	Kind  TokenKind
	Value float64
}

// Operator and grouping tokens.
var (
	Plus       = Token{Kind: TokenPlus}
	Minus      = Token{Kind: TokenMinus}
	Multiply   = Token{Kind: TokenMultiply}
	Divide     = Token{Kind: TokenDivide}
	LeftParen  = Token{Kind: TokenLeftParen}
	RightParen = Token{Kind: TokenRightParen}
)

// Number creates a number token.
func Number(v float64) Token {
	return Token{Kind: TokenNumber, Value: v}
}

// String returns the token as it would appear in an expression.
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMultiply:
		return "*"
	case TokenDivide:
		return "/"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	default:
		return "$" + t.Kind.String()
	}
}
