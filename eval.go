package fm

import "log"

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	prec     uint
	maxDepth int
	strict   bool
	debug    *log.Logger
	warn     *log.Logger
	// depth is the number of brackets enclosing the expression the context
	// is evaluating.
	depth int
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: DefaultPrec, maxDepth: DefaultMaxDepth}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
			if n.prec == 0 {
				n.prec = DefaultPrec
			}
		case depthopt:
			n.maxDepth = int(opt)
			if n.maxDepth <= 0 {
				n.maxDepth = DefaultMaxDepth
			}
		case strictopt:
			n.strict = bool(opt)
		case debugopt:
			n.debug = opt.l
		case warnopt:
			n.warn = opt.l
		default:
			panic("fm: unknown option type")
		}
	}
	return &n
}

// Prec returns the working precision of the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// MaxDepth returns the limit on nested brackets.
func (ctx *Context) MaxDepth() int {
	return ctx.maxDepth
}

// Strict returns whether numbers with no operator are errors.
func (ctx *Context) Strict() bool {
	return ctx.strict
}

// Eval normalizes, classifies, and evaluates raw tokens.
func (ctx *Context) Eval(raw []string) (float64, error) {
	toks := Normalize(raw)
	if len(toks) == 0 {
		return 0, &EmptyExpressionError{}
	}
	return ctx.eval(toks, 1)
}

// eval evaluates normalized tokens, the first of which is at position col.
func (ctx *Context) eval(toks []string, col int) (float64, error) {
	ts, cols, err := ctx.classify(toks, col)
	if err != nil {
		return 0, err
	}
	return ctx.fold(ts, cols)
}

// EvalTokens evaluates classified tokens from left to right. Positions in
// errors are indices into toks, starting from 1.
func (ctx *Context) EvalTokens(toks []Token) (float64, error) {
	return ctx.fold(toks, nil)
}

// fold evaluates classified tokens. cols holds the position of each token, or
// is nil to use indices.
func (ctx *Context) fold(toks []Token, cols []int) (float64, error) {
	pos := func(i int) int {
		if cols == nil {
			return i + 1
		}
		return cols[i]
	}
	var acc float64
	var pending Op
	var pendingCol int
	for i, t := range toks {
		switch t.kind {
		case tokenNum:
			switch {
			case pending != opNone:
				acc = pending.apply(ctx.prec, acc, t.num)
				pending = opNone
			case acc == 0:
				// Nothing has set the accumulator yet.
				acc = t.num
			default:
				err := &DanglingOperandError{Col: pos(i), Operand: t.num}
				if ctx.strict {
					return 0, err
				}
				ctx.warnf("%v; ignoring it", err)
			}
		case tokenOp:
			switch {
			case !t.op.valid():
				return 0, &OperatorError{Col: pos(i), Op: t.op}
			case t.op.Unary():
				acc = t.op.apply(ctx.prec, acc, 0)
			default:
				if pending != opNone {
					ctx.warnf("%d: operator %v replaces operator %v at %d", pos(i), t.op, pending, pendingCol)
				}
				pending, pendingCol = t.op, pos(i)
			}
		default:
			return 0, &TokenError{Col: pos(i), Text: t.String()}
		}
		ctx.debugf("val:%s opt:%s", FormatNumber(acc), pendingString(pending))
	}
	if pending != opNone {
		ctx.warnf("%d: operator %v has no operand", pendingCol, pending)
	}
	return acc, nil
}

func pendingString(op Op) string {
	if op == opNone {
		return "none"
	}
	return op.String()
}

func (ctx *Context) debugf(format string, args ...interface{}) {
	if ctx.debug != nil {
		ctx.debug.Printf(format, args...)
	}
}

func (ctx *Context) warnf(format string, args ...interface{}) {
	if ctx.warn != nil {
		ctx.warn.Printf(format, args...)
	}
}

// Eval is a shortcut to evaluate raw tokens with a new context.
func Eval(raw []string, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).Eval(raw)
}

// EvalString is a shortcut to evaluate a string expression. Tokens in src are
// separated by whitespace.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval([]string{src}, opts...)
}
