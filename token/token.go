// SPDX-License-Identifier: MIT
package token

import (
	"fmt"
	"strings"
)

// Token is a classified slice of the source.
type Token struct {
	Kind  Kind
	Value string
}

// String implements fmt.Stringer.
func (t Token) String() string { return fmt.Sprintf("%s(%q)", t.Kind, t.Value) }

// Concat joins the token values; for a complete scan this reproduces the source.
func Concat(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value)
	}

	return b.String()
}

// Coalesce merges adjacent tokens of the same Kind.
func Coalesce(tokens []Token) (merged []Token) {
	merged = make([]Token, 0, len(tokens))

	for _, t := range tokens {
		if t.Value == "" {
			continue
		}

		if last := len(merged) - 1; last >= 0 && merged[last].Kind == t.Kind {
			merged[last].Value += t.Value
			continue
		}
		merged = append(merged, t)
	}

	return
}
