package calc

import (
	"errors"
	"strconv"
)

// Evaluation errors. These messages are the complete text that callers see
// from Calculate; they do not include position information.
var (
	ErrInvalidExpression = errors.New("Invalid expression")
	ErrDivisionByZero    = errors.New("Division by zero")
)

// EvalError is an error from evaluating a token sequence. It unwraps to
// ErrInvalidExpression or ErrDivisionByZero. It implements InputError.
type EvalError struct {
	// Err is the kind of failure.
	Err error
	// Index is the index of the token being processed when evaluation failed,
	// or the number of tokens if it failed after all tokens were consumed.
	Index int
}

func (err *EvalError) Error() string {
	return err.Err.Error()
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) Pos() int {
	return err.Index
}

// Detail returns the error message with its position, for diagnostics.
func (err *EvalError) Detail() string {
	return "token " + strconv.Itoa(err.Index) + ": " + err.Err.Error()
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the index of the token that caused the error.
	Pos() int
}

var _ InputError = (*EvalError)(nil)
