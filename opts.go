package fm

import "log"

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt   uint
	depthopt  int
	strictopt bool
	debugopt  struct{ l *log.Logger }
	warnopt   struct{ l *log.Logger }
)

func (precopt) ctxOption()   {}
func (depthopt) ctxOption()  {}
func (strictopt) ctxOption() {}
func (debugopt) ctxOption()  {}
func (warnopt) ctxOption()   {}

const (
	// DefaultPrec is the default working precision in bits for exponents,
	// roots, and logarithms.
	DefaultPrec = 64
	// DefaultMaxDepth is the default limit on nested brackets.
	DefaultMaxDepth = 256
)

// Prec sets the working precision in bits used to compute exponents, roots,
// and logarithms before rounding to float64. Zero selects DefaultPrec.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// MaxDepth limits how deeply brackets may nest. Zero or less selects
// DefaultMaxDepth.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// Strict sets whether a number with no operator before it is an error. When
// not strict, such numbers are discarded with a warning.
func Strict(strict bool) ContextOption {
	return strictopt(strict)
}

// DebugLog sets a logger to receive classified tokens and each evaluation
// step. A nil logger disables debug output.
func DebugLog(l *log.Logger) ContextOption {
	return debugopt{l}
}

// WarnLog sets a logger to receive warnings about input which evaluation
// tolerates. A nil logger disables warnings.
func WarnLog(l *log.Logger) ContextOption {
	return warnopt{l}
}
