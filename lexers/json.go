// SPDX-License-Identifier: MIT
package lexers

import (
	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

// JSON lexes JavaScript Object Notation; object keys are emitted as Name.Tag.
var JSON = lexer.MustDefinition(lexer.Meta{
	Tag:         "json",
	Title:       "JSON",
	Description: "JavaScript Object Notation (json.org)",
	Filenames:   []string{"*.json", "*.jsonc", ".babelrc", ".eslintrc"},
	Mimetypes:   []string{"application/json", "application/vnd.api+json", "application/hal+json"},
}, lexer.States{
	lexer.RootState: {
		lexer.Emit(`\s+`, token.Whitespace),
		lexer.Emit(`"(?:\\.|[^"\\\n])*"(?=\s*:)`, token.NameTag),
		lexer.Emit(`"`, token.StringDouble, lexer.Push("string")),
		lexer.Emit(`-?(?:0|[1-9]\d*)\.\d+(?:[eE][+-]?\d+)?`, token.NumberFloat),
		lexer.Emit(`-?(?:0|[1-9]\d*)(?:[eE][+-]?\d+)?`, token.NumberInteger),
		lexer.Emit(`(?:true|false|null)\b`, token.KeywordConstant),
		lexer.Emit(`[{}\[\],:]`, token.Punctuation),
		lexer.Emit(`//.*$`, token.CommentSingle),
	},
	"string": {
		lexer.Emit(`[^\\"\n]+`, token.StringDouble),
		lexer.Emit(`\\u[0-9a-fA-F]{4}|\\.`, token.StringEscape),
		lexer.Emit(`"`, token.StringDouble, lexer.Pop(1)),
		lexer.Emit(`\n`, token.Error, lexer.Pop(1)),
	},
})
