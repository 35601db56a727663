// SPDX-License-Identifier: MIT
package lexers

import (
	"github.com/dlclark/regexp2"

	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

// prologClause matches a leading fact or clause head, e.g. "parent(tom, bob).".
var prologClause = regexp2.MustCompile(`\A\w+(\(\w+\,\s*\w+\))*\.`, regexp2.None)

// Prolog lexes Prolog; block comments nest.
var Prolog = lexer.MustDefinition(lexer.Meta{
	Tag:         "prolog",
	Title:       "Prolog",
	Description: "The Prolog programming language (http://en.wikipedia.org/wiki/Prolog)",
	Filenames:   []string{"*.pro", "*.P", "*.prolog"},
	Mimetypes:   []string{"text/x-prolog"},
	Analyze: func(sample string) float64 {
		if ok, err := prologClause.MatchString(sample); err == nil && ok {
			return 1
		}
		return 0
	},
}, lexer.States{
	lexer.RootState: {
		lexer.Include("basic"),
		lexer.Include("atoms"),
		lexer.Include("variables"),
		lexer.Include("operators"),
	},
	"basic": {
		lexer.Emit(`\s+`, token.Text),
		lexer.Emit(`^#.*`, token.CommentSingle),
		lexer.Emit(`%.*`, token.CommentSingle),
		lexer.Emit(`/\*`, token.CommentMultiline, lexer.Push("nested-comment")),
		lexer.Emit(`[\[\](){}|.,;!]`, token.Punctuation),
		lexer.Emit(`:-|-->`, token.Punctuation),
		lexer.Emit(`"[^"]*"`, token.StringDouble),
		lexer.Emit(`\d+\.\d+`, token.NumberFloat),
		lexer.Emit(`\d+`, token.LiteralNumber),
	},
	"atoms": {
		lexer.Emit(`\p{Ll}[\p{Ll}\d_]*`, token.StringSymbol),
		lexer.Emit(`'[^']*'`, token.StringSymbol),
	},
	"operators": {
		lexer.Emit(`(?:<|>|=<|>=|==|=:=|=|/|//|\*|\+|-)(?=\s|[a-zA-Z0-9\[])`, token.Operator),
		lexer.Emit(`is\b`, token.Operator),
		lexer.Emit(`(?:mod|div|not)\b`, token.Operator),
		lexer.Emit(`[#&*+\-./:<=>?@^~\\]+`, token.Operator),
	},
	"variables": {
		lexer.Emit(`[A-Z]+\w*`, token.NameVariable),
		lexer.Emit(`_\w*`, token.NameVariable),
	},
	"nested-comment": {
		lexer.Emit(`/\*`, token.CommentMultiline, lexer.Push("nested-comment")),
		lexer.Emit(`\*/`, token.CommentMultiline, lexer.Pop(1)),
		lexer.Emit(`[^*/]+`, token.CommentMultiline),
		lexer.Emit(`[*/]`, token.CommentMultiline),
	},
})
