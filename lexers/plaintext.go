// SPDX-License-Identifier: MIT
package lexers

import (
	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

// plainTextOption names the Kind PlainText emits, e.g. "plaintext?token=Literal.String".
const plainTextOption = "token"

// PlainText emits the whole source as a single Kind.
var PlainText = lexer.MustDefinition(lexer.Meta{
	Tag:         "plaintext",
	Title:       "Plain Text",
	Description: "A boring lexer that doesn't highlight anything",
	Aliases:     []string{"text"},
	Filenames:   []string{"*.txt"},
	Mimetypes:   []string{"text/plain"},
}, lexer.States{
	lexer.RootState: {
		lexer.Using(`[\s\S]+`, func(ctx *lexer.ScanContext, m *lexer.Match) {
			kind := token.Text
			if name, ok := ctx.Option(plainTextOption); ok {
				if k, found := token.Lookup(name); found {
					kind = k
				} else {
					ctx.Logger().Warnf("plaintext: unknown token kind %q", name)
				}
			}
			ctx.Emit(kind, m.Text())
		}),
	},
})
