// SPDX-License-Identifier: MIT
package lexers

import (
	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

// GHCCore lexes the GHC Haskell compiler's intermediate representation dumps.
//
// A binding's expression ends at the first line starting with a non-blank character.
var GHCCore = lexer.MustDefinition(lexer.Meta{
	Tag:         "ghc-core",
	Title:       "GHC Core",
	Description: "Intermediate representation of the GHC Haskell compiler.",
	Filenames:   []string{"*.dump-simpl", "*.dump-cse", "*.dump-ds", "*.dump-spec"},
}, lexer.States{
	lexer.RootState: {
		lexer.Emit(`^====================[\w ]+====================$`, token.GenericHeading),
		lexer.Emit(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d+ UTC$`, token.CommentSingle),
		lexer.Emit(`^Result size of .+\s*.*\}`, token.CommentMultiline),
		lexer.Emit(`--.*$`, token.CommentSingle),
		lexer.Emit(`\[`, token.CommentSpecial, lexer.Push("annotation")),
		lexer.Include("recursive-binding"),
		lexer.Include("ghc-rule"),
		lexer.Include("function"),
		lexer.Emit(`\s`, token.Text),
		lexer.Emit(`.+`, token.Text),
	},
	"expression": {
		lexer.Emit(`\n+`, token.Text),
		lexer.Emit(`(?=^\S)`, token.Text, lexer.Pop(1)),
		lexer.Emit(`\s+`, token.Text, lexer.Push("expression-line")),
	},
	"expression-line": {
		lexer.Emit(` `, token.Text),
		lexer.Include("common"),
		lexer.Emit(`\n`, token.Text, lexer.Pop(1)),
	},
	"annotation": {
		lexer.Emit(`\]`, token.CommentSpecial, lexer.Pop(1)),
		lexer.Emit(`\[`, token.CommentSpecial, lexer.Push("annotation")),
		lexer.Emit(`[^\[\]]+`, token.CommentSpecial),
	},
	"common": {
		lexer.Emit(`\[`, token.CommentSpecial, lexer.Push("annotation")),
		lexer.Emit(`\d+#{0,2}`, token.NumberInteger),
		lexer.Include("constants"),
		lexer.Include("punctuation"),
		lexer.Include("operator"),
		lexer.Include("name"),
	},
	"constants": {
		lexer.Emit(`__DEFAULT`, token.NameConstant),
	},
	"name": {
		lexer.ByGroups(`^([A-Z]\w*)(\.)`, token.NameNamespace, token.Punctuation),
		lexer.Emit(`[A-Z][^\s.,(){}]*`, token.KeywordType),
		lexer.Emit(`\S[^\s.,(){}]*`, token.NameVariable),
	},
	"punctuation": {
		lexer.Emit(`[.,(){}]`, token.Punctuation),
	},
	"operator": {
		lexer.Emit(`=>|->|::|=`, token.Operator),
		lexer.Emit(`(?:forall|case|of|let|join)\b`, token.Keyword),
		lexer.Emit(`@|\\`, token.Operator),
	},
	"recursive-binding": {
		lexer.ByGroups(`(Rec)(\s*)(\{)`, token.Keyword, token.Text, token.Punctuation),
		lexer.ByGroups(`^(end)(\s*)(Rec)(\s*)(\})`, token.Keyword, token.Text, token.Keyword, token.Text, token.Punctuation),
	},
	"ghc-rule": {
		lexer.Using(`(?s)^(?<name>".*?")`, emitNamed(token.NameLabel), lexer.Push("expression")),
	},
	"function": {
		lexer.Using(`(?s)^(?<name>\S+)(?=.*?(?:=|::))`, emitNamed(token.NameFunction), lexer.Push("expression")),
	},
})

// emitNamed creates a Callback emitting the "name" capture group as kind.
func emitNamed(kind token.Kind) lexer.Callback {
	return func(ctx *lexer.ScanContext, m *lexer.Match) {
		ctx.Emit(kind, m.NamedGroup("name"))
	}
}
