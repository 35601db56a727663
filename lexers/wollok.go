// SPDX-License-Identifier: MIT
package lexers

import (
	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

const (
	wollokEntity   = `[a-zA-Z][a-zA-Z0-9]*`
	wollokVariable = `_?` + wollokEntity

	// wollokLambdas counts the closures open inside a method body.
	wollokLambdas = "lambda"
)

// Wollok lexes the Wollok teaching language.
var Wollok = lexer.MustDefinition(lexer.Meta{
	Tag:         "wollok",
	Title:       "Wollok",
	Description: "Wollok lang",
	Filenames:   []string{"*.wlk", "*.wtest", "*.wpgm"},
	Analyze:     func(string) float64 { return 0.3 },
}, lexer.States{
	"whitespace": {
		lexer.Emit(`\s+`, token.Whitespace),
	},
	lexer.RootState: {
		lexer.Include("whitespace"),
		lexer.Emit(`import\b`, token.KeywordReserved, lexer.Push("import")),
		lexer.Emit(`(?:class|object|program)\b`, token.KeywordReserved, lexer.Push("entity-naming")),
		lexer.Emit(`(?:describe|test)\b`, token.KeywordReserved, lexer.Push("test-naming")),
	},
	"import": {
		lexer.Include("whitespace"),
		lexer.Emit(`.+$`, token.Text, lexer.Pop(1)),
	},
	"entity-naming": {
		lexer.Include("whitespace"),
		lexer.Emit(`inherits\b`, token.KeywordReserved),
		lexer.Emit(wollokEntity, token.NameClass),
		lexer.Emit(`\{`, token.Text, lexer.Push("entity-definition")),
		lexer.Emit(`\}`, token.Text, lexer.Pop(1)),
	},
	"test-naming": {
		lexer.Include("whitespace"),
		lexer.Emit(`"[^"]*"`, token.LiteralString),
		wollokBody(),
	},
	"entity-definition": {
		lexer.Include("whitespace"),
		lexer.Emit(`(?:var|const)\b`, token.KeywordReserved, lexer.Push("variable-declaration")),
		lexer.Emit(`override\b`, token.KeywordReserved),
		lexer.Emit(`(?:method|constructor|super)\b`, token.KeywordReserved, lexer.Push("method-signature")),
		lexer.Emit(`\}`, token.Text, lexer.Pop(2)),
	},
	"method-signature": {
		lexer.Include("whitespace"),
		lexer.Emit(wollokEntity, token.Text, lexer.Push("parameters")),
		lexer.Emit(`\(`, token.Text, lexer.Push("parameters")),
	},
	"parameters": {
		lexer.Include("whitespace"),
		lexer.Emit(`[()]`, token.Text),
		lexer.Emit(wollokVariable, token.KeywordVariable),
		lexer.Emit(`,`, token.Punctuation),
		lexer.ByGroups(`(=)(\s*)(super)\b`, token.Text, token.Whitespace, token.KeywordReserved),
		lexer.Emit(`=`, token.Text, lexer.Push("inline")),
		wollokBody(),
	},
	"definition": {
		lexer.Include("whitespace"),
		lexer.Emit(`(?:new|super|return|if|else)\b`, token.KeywordReserved),
		lexer.Emit(`\+\+|--|\*|\+|-|/|<|>|=|!|%|(?:and|or|not)\b`, token.Operator),
		lexer.Include("literal"),
		lexer.ByGroups(`(\.)(`+wollokEntity+`)`, token.Operator, token.Text),
		lexer.Emit(`[()]`, token.Text),
		lexer.Using(`\{`, func(ctx *lexer.ScanContext, m *lexer.Match) {
			ctx.Emit(token.Text, m.Text())
			ctx.Add(wollokLambdas, 1)
		}),
		lexer.Using(`\}`, func(ctx *lexer.ScanContext, m *lexer.Match) {
			ctx.Emit(token.Text, m.Text())
			if ctx.Counter(wollokLambdas) == 0 {
				ctx.Pop(3)
				return
			}
			ctx.Add(wollokLambdas, -1)
		}),
	},
	"literal": {
		lexer.Include("whitespace"),
		lexer.Emit(`self\b`, token.NameBuiltinPseudo),
		lexer.Emit(wollokVariable, token.KeywordVariable),
		lexer.Emit(`[0-9]+\.?[0-9]*`, token.LiteralNumber),
		lexer.Emit(`"[^"\n]*"`, token.LiteralString),
		lexer.Emit(`\[|#\{`, token.Punctuation, lexer.Push("list")),
	},
	"list": {
		lexer.Include("whitespace"),
		lexer.Emit(`,`, token.Punctuation),
		lexer.Emit(`[\]}]`, token.Punctuation, lexer.Pop(1)),
		lexer.Include("literal"),
	},
	"variable-declaration": {
		lexer.Emit(`$`, token.Text, lexer.Pop(1)),
		lexer.Emit(`=`, token.Text),
		lexer.Include("literal"),
	},
	"inline": {
		lexer.Emit(`$`, token.Text, lexer.Pop(3)),
		lexer.Include("definition"),
	},
})

// wollokBody enters a definition body with no open lambdas.
func wollokBody() lexer.Rule {
	return lexer.Using(`\{`, func(ctx *lexer.ScanContext, m *lexer.Match) {
		ctx.Emit(token.Text, m.Text())
		ctx.SetCounter(wollokLambdas, 0)
	}, lexer.Push("definition"))
}
