// SPDX-License-Identifier: MIT
package lexers

import (
	"github.com/dlclark/regexp2"

	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/token"
)

const dockerInstructions = `FROM|MAINTAINER|CMD|EXPOSE|ENV|ADD|ENTRYPOINT|VOLUME|WORKDIR|RUN|` +
	`LABEL|ARG|STOPSIGNAL|HEALTHCHECK|SHELL|USER|COPY`

var dockerFrom = regexp2.MustCompile(`\A(?:\s*#.*\n|\s*\n)*\s*(?i:FROM|ARG)\s+\S`, regexp2.None)

// Docker lexes Dockerfiles.
var Docker = lexer.MustDefinition(lexer.Meta{
	Tag:         "docker",
	Title:       "Docker",
	Description: "Dockerfile syntax",
	Aliases:     []string{"dockerfile"},
	Filenames:   []string{"Dockerfile", "*.Dockerfile", "*.docker", "Dockerfile.*"},
	Mimetypes:   []string{"text/x-dockerfile-config"},
	Analyze: func(sample string) float64 {
		if ok, err := dockerFrom.MatchString(sample); err == nil && ok {
			return 0.5
		}
		return 0
	},
}, lexer.States{
	lexer.RootState: {
		lexer.Emit(`^#\s*(?i:syntax|escape)\s*=.*$`, token.CommentPreproc),
		lexer.Emit(`^\s*#.*$`, token.Comment),
		lexer.ByGroups(`(?i)^(\s*)(ONBUILD)(\s+)(`+dockerInstructions+`)\b`, token.Text, token.Keyword, token.Text, token.Keyword).
			Then(lexer.Push("arguments")),
		lexer.ByGroups(`(?i)^(\s*)(FROM)(\s+)(\S+)(\s+)(AS)(\s+)(\S+)`,
			token.Text, token.Keyword, token.Text, token.Text, token.Text, token.Keyword, token.Text, token.NameLabel),
		lexer.ByGroups(`(?i)^(\s*)(`+dockerInstructions+`)\b`, token.Text, token.Keyword).Then(lexer.Push("arguments")),
		lexer.Emit(`\r?\n|[ \t]+`, token.Text),
		lexer.Emit(`\S+`, token.Text),
	},
	"arguments": {
		lexer.Emit(`\\\r?\n`, token.StringEscape),
		lexer.Emit(`\r?\n`, token.Text, lexer.Pop(1)),
		lexer.Emit(`[ \t]+`, token.Text),
		lexer.Emit(`--[\w-]+=?`, token.NameAttribute),
		lexer.Emit(`"(?:\\.|[^"\\\n])*"`, token.StringDouble),
		lexer.Emit(`'[^'\n]*'`, token.StringSingle),
		lexer.Emit(`\$(?:\{[^}\n]*\}|\w+)`, token.NameVariable),
		lexer.Emit(`[\[\],]`, token.Punctuation),
		lexer.Emit(`[^\s\\"'$\[\],]+|[\\$"']`, token.Text),
	},
})
