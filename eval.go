package calc

// EvalOption is an option used when evaluating tokens.
type EvalOption interface {
	evalOption()
}

type groupopt bool

func (groupopt) evalOption() {}

// AllowGrouping enables parenthesized subexpressions. By default, any
// parenthesis token makes the expression invalid.
func AllowGrouping() EvalOption {
	return groupopt(true)
}

// evaluator holds the state of a single evaluation.
type evaluator struct {
	nums  []float64
	ops   []TokenKind
	group bool
}

// Evaluate computes the value of a token sequence. Multiplication and division
// bind tighter than addition and subtraction, and operators of equal
// precedence associate left to right. If tokens end with more than one
// pending operand, the last one is the result.
//
// The error, if not nil, is an *EvalError which unwraps to either
// ErrInvalidExpression or ErrDivisionByZero.
func Evaluate(tokens []Token, opts ...EvalOption) (float64, error) {
	var ev evaluator
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case groupopt:
			ev.group = bool(opt)
		default:
			panic("calc: unknown option type")
		}
	}
	for i, tok := range tokens {
		if err := ev.step(tok); err != nil {
			return 0, &EvalError{Err: err, Index: i}
		}
	}
	for len(ev.ops) > 0 {
		op := ev.popOp()
		if op == TokenLeftParen {
			return 0, &EvalError{Err: ErrInvalidExpression, Index: len(tokens)}
		}
		if err := ev.apply(op); err != nil {
			return 0, &EvalError{Err: err, Index: len(tokens)}
		}
	}
	if len(ev.nums) == 0 {
		return 0, &EvalError{Err: ErrInvalidExpression, Index: len(tokens)}
	}
	return ev.nums[len(ev.nums)-1], nil
}

// step processes one token.
func (ev *evaluator) step(tok Token) error {
	switch tok.Kind {
	case TokenNumber:
		ev.nums = append(ev.nums, tok.Value)
	case TokenPlus, TokenMinus, TokenMultiply, TokenDivide:
		for len(ev.ops) > 0 && hasPrecedence(ev.topOp(), tok.Kind) {
			if err := ev.apply(ev.popOp()); err != nil {
				return err
			}
		}
		ev.ops = append(ev.ops, tok.Kind)
	case TokenLeftParen:
		if !ev.group {
			return ErrInvalidExpression
		}
		ev.ops = append(ev.ops, TokenLeftParen)
	case TokenRightParen:
		if !ev.group {
			return ErrInvalidExpression
		}
		for {
			if len(ev.ops) == 0 {
				// Close paren with no open paren.
				return ErrInvalidExpression
			}
			op := ev.popOp()
			if op == TokenLeftParen {
				break
			}
			if err := ev.apply(op); err != nil {
				return err
			}
		}
	default:
		return ErrInvalidExpression
	}
	return nil
}

// hasPrecedence returns whether the operator top on the stack must be applied
// before pushing the incoming operator in. Equal precedence counts, which
// makes every operator left associative.
func hasPrecedence(top, in TokenKind) bool {
	switch top {
	case TokenMultiply, TokenDivide:
		return true
	case TokenPlus, TokenMinus:
		return in == TokenPlus || in == TokenMinus
	default:
		// Open parens stay until their close paren.
		return false
	}
}

func (ev *evaluator) topOp() TokenKind {
	return ev.ops[len(ev.ops)-1]
}

func (ev *evaluator) popOp() TokenKind {
	op := ev.ops[len(ev.ops)-1]
	ev.ops = ev.ops[:len(ev.ops)-1]
	return op
}

// apply replaces the top two operands a, b with a op b.
func (ev *evaluator) apply(op TokenKind) error {
	n := len(ev.nums)
	if n < 2 {
		return ErrInvalidExpression
	}
	a, b := ev.nums[n-2], ev.nums[n-1]
	var r float64
	switch op {
	case TokenPlus:
		r = a + b
	case TokenMinus:
		r = a - b
	case TokenMultiply:
		r = a * b
	case TokenDivide:
		if b == 0 {
			return ErrDivisionByZero
		}
		r = a / b
	default:
		panic("calc: apply on non-operator " + op.String())
	}
	ev.nums = ev.nums[:n-1]
	ev.nums[n-2] = r
	return nil
}
