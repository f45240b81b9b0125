package fm

import (
	"math"
	"math/big"
	"sort"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Op is an operator. Every operator except Factorial is binary, combining the
// accumulated value with the number that follows it.
type Op int8

const (
	opNone Op = iota

	Add       // a + b
	Subtract  // a - b
	Multiply  // a * b
	Divide    // a / b
	Modulo    // a % b, with the sign of a
	Exponent  // a ^ b
	Factorial // a!, unary
	NRoot     // b-th root of a
	Logarithm // log base b of a

	opMax
)

var opsyms = [opMax]string{
	Add:       "+",
	Subtract:  "-",
	Multiply:  "*",
	Divide:    "/",
	Modulo:    "%",
	Exponent:  "^",
	Factorial: "!",
	NRoot:     "nrt",
	Logarithm: "log",
}

// symops is the inverse of opsyms. It is never modified after initialization.
var symops = func() map[string]Op {
	m := make(map[string]Op, len(opsyms))
	for op, sym := range opsyms {
		if sym != "" {
			m[sym] = Op(op)
		}
	}
	return m
}()

// LookupOp gets the operator for a token. The second result is false if the
// token is not an operator.
func LookupOp(sym string) (Op, bool) {
	op, ok := symops[sym]
	return op, ok
}

// Symbols returns the operator symbols in sorted order.
func Symbols() []string {
	r := make([]string, 0, len(symops))
	for sym := range symops {
		r = append(r, sym)
	}
	sort.Strings(r)
	return r
}

// Unary returns whether the operator applies to the accumulated value alone.
func (op Op) Unary() bool {
	return op == Factorial
}

func (op Op) valid() bool {
	return opNone < op && op < opMax
}

// String returns the operator's symbol.
func (op Op) String() string {
	if !op.valid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opsyms[op]
}

// apply computes a op b at the given working precision. Unary operators ignore
// b. Panics if op is not a valid operator.
func (op Op) apply(prec uint, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	case Modulo:
		return math.Mod(a, b)
	case Exponent:
		return pow(prec, a, b)
	case Factorial:
		return factorial(a)
	case NRoot:
		return nroot(prec, a, b)
	case Logarithm:
		return logb(prec, a, b)
	default:
		panic("fm: apply with invalid operator " + op.String())
	}
}

// factorial computes the product of the integers from 1 to floor(x).
func factorial(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x >= 171:
		// 171! is already beyond the largest float64.
		return math.Inf(1)
	}
	r := 1.0
	for k := 2.0; k <= x; k++ {
		r *= k
	}
	return r
}

func pow(prec uint, a, b float64) float64 {
	fallback := func() float64 { return math.Pow(a, b) }
	// bigfloat.Pow only handles positive bases. math.Pow is already exact
	// for small integer exponents.
	if b == math.Trunc(b) || !(a > 0) || math.IsInf(a, 0) || math.IsNaN(b) || !inRange(a, b) {
		return fallback()
	}
	return precise(prec, fallback, func(z *big.Float) {
		bigfloat.Pow(z, bigf(prec, a), bigf(prec, b))
	})
}

func nroot(prec uint, a, b float64) float64 {
	fallback := func() float64 { return math.Pow(a, 1/b) }
	if !(a > 0) || math.IsInf(a, 0) || b == 0 || math.IsInf(b, 0) || math.IsNaN(b) || !inRange(a, 1/b) {
		return fallback()
	}
	return precise(prec, fallback, func(z *big.Float) {
		e := new(big.Float).SetPrec(prec).SetInt64(1)
		e.Quo(e, bigf(prec, b))
		bigfloat.Pow(z, bigf(prec, a), e)
	})
}

// inRange reports whether x^y, for positive finite x, is well inside the
// range of normal float64 values. bigfloat.Pow does not overflow or underflow
// to the float64 limits, so results outside this range come from math.Pow.
func inRange(x, y float64) bool {
	return math.Abs(y*math.Log2(x)) < 1000
}

func logb(prec uint, a, b float64) float64 {
	fallback := func() float64 { return math.Log(a) / math.Log(b) }
	if !(a > 0) || !(b > 0) || a == 1 || b == 1 || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return fallback()
	}
	return precise(prec, fallback, func(z *big.Float) {
		d := new(big.Float).SetPrec(prec)
		bigfloat.Log(z, bigf(prec, a))
		bigfloat.Log(d, bigf(prec, b))
		z.Quo(z, d)
	})
}

// bigf converts x to a big.Float with the given precision. x must be finite.
func bigf(prec uint, x float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// precise calls f to compute a result at prec bits, then rounds it to the
// nearest float64. If f panics with big.ErrNaN, the result is fallback()
// instead.
func precise(prec uint, fallback func() float64, f func(z *big.Float)) (r float64) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		r = fallback()
	}()
	z := new(big.Float).SetPrec(prec)
	f(z)
	r, _ = z.Float64()
	return r
}
