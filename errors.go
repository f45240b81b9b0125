package fm

import "strconv"

// TokenError is an error indicating a token which is not a number, an
// operator, or a bracket. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token that was not understood.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "token "+strconv.Quote(err.Text)+" is not a number or operator")
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, or empty if a close bracket has no match.
	Left string
	// Right is the closing bracket, or empty if an open bracket has no match.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// sub-expression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the sub-expression, or 0
	// for an empty input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col == 0 {
		return "no expression"
	}
	return errpos(err.Col, "no expression in brackets")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DepthError is an error indicating sub-expressions nested more deeply than
// the context allows. It implements InputError.
type DepthError struct {
	// Col is the position of the open bracket that exceeded the limit.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "brackets nested more than "+strconv.Itoa(err.Max)+" deep")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// DanglingOperandError is an error indicating a number that follows another
// value with no operator between them. Evaluation reports it only in strict
// contexts; otherwise the number is discarded with a warning. It implements
// InputError.
type DanglingOperandError struct {
	// Col is the position of the number within the expression being
	// evaluated.
	Col int
	// Operand is the discarded number.
	Operand float64
}

func (err *DanglingOperandError) Error() string {
	return errpos(err.Col, "number "+FormatNumber(err.Operand)+" has no operator")
}

func (err *DanglingOperandError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator the evaluator cannot apply.
// It implements InputError.
type OperatorError struct {
	// Col is the position of the operator within the expression being
	// evaluated.
	Col int
	// Op is the operator.
	Op Op
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+err.Op.String()+" is not implemented")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based index of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*DanglingOperandError)(nil)
	_ InputError = (*OperatorError)(nil)
)
