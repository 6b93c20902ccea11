// Package calc implements a four-function calculator over float64.
//
// An expression is a sequence of non-negative decimal numbers joined by the
// binary operators + - * /. Multiplication and division bind tighter than
// addition and subtraction, and each level associates left to right, so
// "10 + 2 * 3 - 4 / 2" is 14. There is no unary minus.
//
// Tokenization is lenient. Spaces separate numbers, other unrecognized runes
// are skipped entirely, and numeric literals that fail to parse, like "1.2.3",
// are dropped. Evaluation is strict: too few operands or a division by zero is
// an error.
//
// Parentheses are tokenized, but an expression containing them is invalid
// unless evaluated with AllowGrouping.
//
package calc
