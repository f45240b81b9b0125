// Package fm implements a terminal calculator that evaluates tokens strictly
// from left to right.
//
// There is no operator precedence. "10 - 2 * 3" is (10-2)*3, because each
// operator applies to everything computed before it and the single operand
// that follows it. Parentheses, written as separate tokens, group a
// sub-expression which is evaluated on its own and substituted as one number:
// "( 1 + 2 ) * 4" is 12.
//
// Evaluation happens in three steps. Normalize splits tokens that contain
// whitespace, so "2 + 3" as one argument is the same as three. Classify turns
// the tokens into numbers and operators, evaluating sub-expressions as it
// finds them. EvalTokens folds the result into one number.
//
package fm
