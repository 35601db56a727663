// SPDX-License-Identifier: MIT
package lexers

import (
	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

type (
	// words maps reserved words to their Kind.
	words map[string]token.Kind
)

func wordKinds(groups map[token.Kind][]string) words {
	w := make(words)
	for kind, list := range groups {
		for _, word := range list {
			w[word] = kind
		}
	}

	return w
}

// kind retrieves a word's Kind, fallback for unreserved words.
func (w words) kind(word string, fallback token.Kind) token.Kind {
	if kind, ok := w[word]; ok {
		return kind
	}

	return fallback
}

// emit creates a Callback classifying the whole match.
func (w words) emit(fallback token.Kind) lexer.Callback {
	return func(ctx *lexer.ScanContext, m *lexer.Match) {
		ctx.Emit(w.kind(m.Text(), fallback), m.Text())
	}
}
