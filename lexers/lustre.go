// SPDX-License-Identifier: MIT
package lexers

import (
	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

var lustreWords = wordKinds(map[token.Kind][]string{
	token.Keyword: {
		"extern", "unsafe", "assert", "const", "current", "enum", "function", "let", "node", "operator",
		"returns", "step", "struct", "tel", "type", "var", "model", "package", "needs", "provides",
		"uses", "is", "body", "end", "include", "merge",
	},
	token.OperatorWord: {
		"div", "and", "xor", "mod", "or", "not", "nor", "if", "then", "else", "fby", "pre", "when", "with",
	},
	token.KeywordType: {"int", "real", "bool"},
})

// Lustre lexes the Lustre synchronous dataflow language (Verimag).
var Lustre = lexer.MustDefinition(lexer.Meta{
	Tag:         "lustre",
	Title:       "Lustre",
	Description: "The Lustre programming language (Verimag)",
	Filenames:   []string{"*.lus"},
	Mimetypes:   []string{"text/x-lustre"},
}, lexer.States{
	lexer.RootState: {
		lexer.Emit(`\s+`, token.Text),
		lexer.Emit(`(?:false|true)\b`, token.KeywordConstant),
		lexer.Emit(`--.*`, token.CommentSingle),
		lexer.Emit(`(?s)/\*.*?\*/`, token.CommentMultiline),
		lexer.Emit(`(?s)\(\*.*?\*\)`, token.CommentMultiline),
		lexer.Using(`(?i)[a-z_][\w']*`, lustreWords.emit(token.Name)),
		lexer.Emit(`[(){}\[\];]+`, token.Punctuation),
		lexer.Emit(`(?i)-?\d[\d_]*(?:\.[\d_]*)?e[+-]?\d[\d_]*|-?\d[\d_]*\.[\d_]*`, token.NumberFloat),
		lexer.Emit(`\d[\d_]*`, token.NumberInteger),
		lexer.Emit(`[,!$%&*+./:<=>?@^|~#-]+`, token.Operator),
		lexer.Emit(`'(?:\\[\\"'ntbr ]|\\[0-9]{3}|\\x[0-9a-fA-F]{2})'`, token.StringChar),
		lexer.Emit(`'.'`, token.StringChar),
		lexer.Emit(`"`, token.StringDouble, lexer.Push("string")),
		lexer.Emit(`[~?][a-zA-Z_][\w']*`, token.NameVariable),
	},
	"string": {
		lexer.Emit(`[^\\"]+`, token.StringDouble),
		lexer.Include("escape-sequence"),
		lexer.Emit(`\\\n`, token.StringDouble),
		lexer.Emit(`"`, token.StringDouble, lexer.Pop(1)),
	},
	"escape-sequence": {
		lexer.Emit(`\\[\\"'ntbr]`, token.StringEscape),
		lexer.Emit(`\\\d{3}`, token.StringEscape),
		lexer.Emit(`\\x[0-9a-fA-F]{2}`, token.StringEscape),
	},
})
