package fm

import (
	"math"
	"strconv"
	"strings"
)

// Token is a classified token, either a number or an operator. The zero Token
// is neither and is never produced by Classify.
type Token struct {
	kind tokenKind
	num  float64
	op   Op
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a number, including the result of a sub-expression.
	tokenNum
	// tokenOp is an operator.
	tokenOp
)

// Num creates a number token.
func Num(x float64) Token {
	return Token{kind: tokenNum, num: x}
}

// OpToken creates an operator token.
func OpToken(op Op) Token {
	return Token{kind: tokenOp, op: op}
}

// Number returns the token's value and whether the token is a number.
func (t Token) Number() (float64, bool) {
	return t.num, t.kind == tokenNum
}

// Operator returns the token's operator and whether the token is an operator.
func (t Token) Operator() (Op, bool) {
	return t.op, t.kind == tokenOp
}

func (t Token) String() string {
	switch t.kind {
	case tokenNum:
		return FormatNumber(t.num)
	case tokenOp:
		return t.op.String()
	default:
		return "$invalid$"
	}
}

// FormatNumber formats a number the way the calculator prints results: as a
// plain decimal with the fewest digits that represent it exactly, and never in
// scientific notation. Infinities are "inf" and "-inf".
func FormatNumber(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// FormatTokens renders a classified token list as space-separated symbols in
// brackets, e.g. "[2 + 3]".
func FormatTokens(toks []Token) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}

