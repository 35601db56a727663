// SPDX-License-Identifier: MIT
package lexers

import (
	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

const (
	syzID    = `[a-zA-Z_][a-zA-Z0-9_]*`
	syzNumID = `[a-zA-Z0-9_]+`
	syzResID = `r[0-9]+`
)

var syzKeywords = wordKinds(map[token.Kind][]string{
	token.Keyword: {
		"ANY", "ANYBLOB", "ANYPTR", "ANYPTR64", "ANYPTRS", "ANYRES16", "ANYRES32", "ANYRES64",
		"ANYRESDEC", "ANYRESHEX", "ANYRESOCT", "ANYUNION", "AUTO", "false", "nil", "true", "void",
	},
})

// Syzprog lexes syzkaller program descriptions.
var Syzprog = lexer.MustDefinition(lexer.Meta{
	Tag:         "syzprog",
	Title:       "Syzprog",
	Description: "Program description language used by syzkaller",
}, lexer.States{
	lexer.RootState: {
		lexer.Emit(`\s+`, token.Text),
		lexer.Emit(`#.*$`, token.Comment),
		lexer.ByGroups(`(`+syzResID+`)(\s+)(=)`, token.KeywordPseudo, token.Text, token.Punctuation),
		lexer.ByGroups(`(`+syzID+`)(\$)?(`+syzNumID+`)?(\s+)?(\()`,
			token.NameFunction, token.Punctuation, token.NameFunctionMagic, token.Text, token.Punctuation).
			Then(lexer.Push("syscall-inner")),
	},
	"syscall-inner": {
		lexer.Emit(`\s+`, token.Text),
		lexer.Emit(`#.*$`, token.Comment),
		lexer.Include("term"),
		lexer.Include("number"),
		lexer.Include("string"),
		lexer.Emit(`[@&=,<>{}\[\]]`, token.Punctuation),
		lexer.Emit(`[!#$%^*\-+/|~:;.?]`, token.Punctuation),
		lexer.Emit(`\(`, token.Punctuation, lexer.Push("syscall-inner")),
		lexer.Emit(`\)`, token.Punctuation, lexer.Pop(1)),
	},
	"term": {
		lexer.Emit(syzResID+`\b`, token.KeywordPseudo),
		lexer.Using(syzID, syzKeywords.emit(token.Name)),
	},
	"number": {
		lexer.Emit(`(?i)-?0x[\da-f]+`, token.NumberHex),
		lexer.Emit(`-?\d+`, token.NumberInteger),
	},
	"string": {
		lexer.Emit(`"[^"]*"`, token.StringDouble),
		lexer.Emit("`[^`]*`", token.StringBacktick),
		lexer.Emit(`'[^']*'`, token.StringSingle),
	},
})
