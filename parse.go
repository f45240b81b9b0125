package fm

import (
	"errors"
	"strconv"
)

// Classify converts normalized tokens into numbers and operators. Each
// bracketed sub-expression is evaluated as it is found and replaced by its
// result.
func (ctx *Context) Classify(toks []string) ([]Token, error) {
	r, _, err := ctx.classify(toks, 1)
	return r, err
}

// classify converts tokens, the first of which is at position col. The second
// result holds the position of each classified token.
func (ctx *Context) classify(toks []string, col int) ([]Token, []int, error) {
	r := make([]Token, 0, len(toks))
	cols := make([]int, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		pos := col + i
		if x, ok := parseNum(tok); ok {
			r = append(r, Num(x))
			cols = append(cols, pos)
			continue
		}
		if op, ok := LookupOp(tok); ok {
			r = append(r, OpToken(op))
			cols = append(cols, pos)
			continue
		}
		switch tok {
		case Open:
			end := matchClose(toks, i)
			if end < 0 {
				return nil, nil, &BracketError{Col: pos, Left: Open}
			}
			if end == i+1 {
				return nil, nil, &EmptyExpressionError{Col: col + end}
			}
			if ctx.depth >= ctx.maxDepth {
				return nil, nil, &DepthError{Col: pos, Max: ctx.maxDepth}
			}
			sub := ctx.Clone()
			sub.depth++
			x, err := sub.eval(toks[i+1:end], pos+1)
			if err != nil {
				return nil, nil, err
			}
			r = append(r, Num(x))
			cols = append(cols, pos)
			i = end
		case Close:
			return nil, nil, &BracketError{Col: pos, Right: Close}
		default:
			return nil, nil, &TokenError{Col: pos, Text: tok}
		}
	}
	ctx.debugf("AST (depth %d): %s", ctx.depth, FormatTokens(r))
	return r, cols, nil
}

// matchClose finds the index of the bracket which closes the open bracket at
// toks[open]. The result is -1 if there is none.
func matchClose(toks []string, open int) int {
	depth := 1
	for i := open + 1; i < len(toks); i++ {
		switch toks[i] {
		case Open:
			depth++
		case Close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseNum parses a numeric token. Literals too large or small for float64
// become infinities or zeros rather than failing.
func parseNum(s string) (float64, bool) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return x, true
		}
		return 0, false
	}
	return x, true
}
