package fm

import (
	"strings"
	"unicode"
)

// Open and Close are the tokens which delimit a sub-expression. Each must be
// a token of its own.
const (
	Open  = "("
	Close = ")"
)

// Normalize splits each token which contains whitespace into the non-empty
// fields between the whitespace. Other tokens pass through unchanged, so
// normalizing a list with no embedded whitespace returns an equal list.
func Normalize(raw []string) []string {
	var r []string
	for _, tok := range raw {
		if strings.IndexFunc(tok, unicode.IsSpace) < 0 {
			r = append(r, tok)
			continue
		}
		r = append(r, strings.Fields(tok)...)
	}
	return r
}
