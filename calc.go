package calc

import "io"

// Calculate tokenizes and evaluates an expression. When the expression is
// invalid, the error message is exactly "Invalid expression" or
// "Division by zero".
func Calculate(input string, opts ...EvalOption) (float64, error) {
	return Evaluate(Tokenize(input), opts...)
}

// CalculateReader is like Calculate but reads the expression from src.
func CalculateReader(src io.RuneScanner, opts ...EvalOption) (float64, error) {
	toks, err := TokenizeReader(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(toks, opts...)
}
