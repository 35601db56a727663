// SPDX-License-Identifier: MIT
package lexers

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/registry"
	"gitlab.com/fisherprime/hilite/token"
	"gitlab.com/fisherprime/hilite/types"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	logger, _ := logtest.NewNullLogger()
	r, err := NewRegistry(registry.WithLogger(logger))
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	return r
}

func quiet() logrus.FieldLogger {
	logger, _ := logtest.NewNullLogger()
	return logger
}

func find(t *testing.T, tag string) *lexer.Definition {
	t.Helper()

	def, ok := testRegistry(t).Find(tag)
	if !ok {
		t.Fatalf("Registry.Find(%q) found nothing", tag)
	}

	return def
}

func TestNewRegistry(t *testing.T) {
	r := testRegistry(t)

	want := []string{"docker", "ghc-core", "json", "lustre", "plaintext", "prolog", "ssh", "syzprog", "turtle", "wollok"}
	if diff := cmp.Diff(want, r.Names(false)); diff != "" {
		t.Errorf("Registry.Names() mismatch (-want +got):\n%s", diff)
	}
	if !r.Frozen() {
		t.Error("NewRegistry() returned an unfrozen Registry")
	}
}

func TestLexers(t *testing.T) {
	tests := []struct {
		tag   string
		input string
		want  []token.Token
	}{
		{
			tag:   "ssh",
			input: "Host example\n  Hostname www.example.com\n  Port 1234\n  Tunnel no",
			want: []token.Token{
				{Kind: token.Keyword, Value: "Host"},
				{Kind: token.Text, Value: " example\n  "},
				{Kind: token.Keyword, Value: "Hostname"},
				{Kind: token.Text, Value: " www.example.com\n  "},
				{Kind: token.Keyword, Value: "Port"},
				{Kind: token.Text, Value: " "},
				{Kind: token.LiteralNumber, Value: "1234"},
				{Kind: token.Text, Value: "\n  "},
				{Kind: token.Keyword, Value: "Tunnel"},
				{Kind: token.Text, Value: " "},
				{Kind: token.NameConstant, Value: "no"},
			},
		},
		{
			tag:   "json",
			input: `{"a": 1}`,
			want: []token.Token{
				{Kind: token.Punctuation, Value: "{"},
				{Kind: token.NameTag, Value: `"a"`},
				{Kind: token.Punctuation, Value: ":"},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.NumberInteger, Value: "1"},
				{Kind: token.Punctuation, Value: "}"},
			},
		},
		{
			tag:   "json",
			input: `["x\n", -2.5e3]`,
			want: []token.Token{
				{Kind: token.Punctuation, Value: "["},
				{Kind: token.StringDouble, Value: `"x`},
				{Kind: token.StringEscape, Value: `\n`},
				{Kind: token.StringDouble, Value: `"`},
				{Kind: token.Punctuation, Value: ","},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.NumberFloat, Value: "-2.5e3"},
				{Kind: token.Punctuation, Value: "]"},
			},
		},
		{
			tag:   "prolog",
			input: "/* a /* b */ c */\nfoo(X) :- bar.",
			want: []token.Token{
				{Kind: token.CommentMultiline, Value: "/* a /* b */ c */"},
				{Kind: token.Text, Value: "\n"},
				{Kind: token.StringSymbol, Value: "foo"},
				{Kind: token.Punctuation, Value: "("},
				{Kind: token.NameVariable, Value: "X"},
				{Kind: token.Punctuation, Value: ")"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Punctuation, Value: ":-"},
				{Kind: token.Text, Value: " "},
				{Kind: token.StringSymbol, Value: "bar"},
				{Kind: token.Punctuation, Value: "."},
			},
		},
		{
			tag:   "lustre",
			input: "node f(x: int) returns (y: bool);",
			want: []token.Token{
				{Kind: token.Keyword, Value: "node"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Name, Value: "f"},
				{Kind: token.Punctuation, Value: "("},
				{Kind: token.Name, Value: "x"},
				{Kind: token.Operator, Value: ":"},
				{Kind: token.Text, Value: " "},
				{Kind: token.KeywordType, Value: "int"},
				{Kind: token.Punctuation, Value: ")"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Keyword, Value: "returns"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Punctuation, Value: "("},
				{Kind: token.Name, Value: "y"},
				{Kind: token.Operator, Value: ":"},
				{Kind: token.Text, Value: " "},
				{Kind: token.KeywordType, Value: "bool"},
				{Kind: token.Punctuation, Value: ");"},
			},
		},
		{
			tag:   "ghc-core",
			input: "foo :: Int -> Int\nfoo = \\ x -> x",
			want: []token.Token{
				{Kind: token.NameFunction, Value: "foo"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Operator, Value: "::"},
				{Kind: token.Text, Value: " "},
				{Kind: token.KeywordType, Value: "Int"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Operator, Value: "->"},
				{Kind: token.Text, Value: " "},
				{Kind: token.KeywordType, Value: "Int"},
				{Kind: token.Text, Value: "\n"},
				{Kind: token.NameFunction, Value: "foo"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Operator, Value: "="},
				{Kind: token.Text, Value: " "},
				{Kind: token.Operator, Value: `\`},
				{Kind: token.Text, Value: " "},
				{Kind: token.NameVariable, Value: "x"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Operator, Value: "->"},
				{Kind: token.Text, Value: " "},
				{Kind: token.NameVariable, Value: "x"},
			},
		},
		{
			tag:   "docker",
			input: "FROM golang:1.22 AS build\nRUN go build -o /app ./...\n",
			want: []token.Token{
				{Kind: token.Keyword, Value: "FROM"},
				{Kind: token.Text, Value: " golang:1.22 "},
				{Kind: token.Keyword, Value: "AS"},
				{Kind: token.Text, Value: " "},
				{Kind: token.NameLabel, Value: "build"},
				{Kind: token.Text, Value: "\n"},
				{Kind: token.Keyword, Value: "RUN"},
				{Kind: token.Text, Value: " go build -o /app ./...\n"},
			},
		},
		{
			tag:   "syzprog",
			input: `r0 = open(&(0x7f0000000000)='./file0\x00', 0x0, 0x0)`,
			want: []token.Token{
				{Kind: token.KeywordPseudo, Value: "r0"},
				{Kind: token.Text, Value: " "},
				{Kind: token.Punctuation, Value: "="},
				{Kind: token.Text, Value: " "},
				{Kind: token.NameFunction, Value: "open"},
				{Kind: token.Punctuation, Value: "(&("},
				{Kind: token.NumberHex, Value: "0x7f0000000000"},
				{Kind: token.Punctuation, Value: ")="},
				{Kind: token.StringSingle, Value: `'./file0\x00'`},
				{Kind: token.Punctuation, Value: ","},
				{Kind: token.Text, Value: " "},
				{Kind: token.NumberHex, Value: "0x0"},
				{Kind: token.Punctuation, Value: ","},
				{Kind: token.Text, Value: " "},
				{Kind: token.NumberHex, Value: "0x0"},
				{Kind: token.Punctuation, Value: ")"},
			},
		},
		{
			tag:   "turtle",
			input: "@prefix ex: <http://example.org/> .\nex:a a ex:B .",
			want: []token.Token{
				{Kind: token.Keyword, Value: "@prefix"},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.NameNamespace, Value: "ex"},
				{Kind: token.Punctuation, Value: ":"},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.NameVariable, Value: "<http://example.org/>"},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.Punctuation, Value: "."},
				{Kind: token.Whitespace, Value: "\n"},
				{Kind: token.NameNamespace, Value: "ex"},
				{Kind: token.Punctuation, Value: ":"},
				{Kind: token.NameTag, Value: "a"},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.KeywordType, Value: "a"},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.NameNamespace, Value: "ex"},
				{Kind: token.Punctuation, Value: ":"},
				{Kind: token.NameTag, Value: "B"},
				{Kind: token.Whitespace, Value: " "},
				{Kind: token.Punctuation, Value: "."},
			},
		},
		{
			tag:   "plaintext",
			input: "any\nthing",
			want:  []token.Token{{Kind: token.Text, Value: "any\nthing"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := token.Coalesce(lexer.New(find(t, tt.tag), lexer.WithLogger(quiet())).Tokenize(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestWollok(t *testing.T) {
	src := strings.Join([]string{
		"object pepita {",
		"  var energia = 100",
		"  method volar(km) {",
		"    energia = energia - km",
		"    [1].map({ n => n + 1 })",
		"  }",
		"}",
		"",
	}, "\n")

	it := lexer.New(Wollok, lexer.WithLogger(quiet())).Lex(src)
	tokens := it.Tokens()

	for _, tok := range tokens {
		if tok.Kind == token.Error {
			t.Errorf("Tokenize() produced %v", tok)
		}
	}
	if got := token.Concat(tokens); got != src {
		t.Errorf("Concat() = %q, want %q", got, src)
	}
	if diff := cmp.Diff([]string{lexer.RootState}, it.Stack()); diff != "" {
		t.Errorf("Iterator.Stack() mismatch (-want +got):\n%s", diff)
	}
}

func TestWollok_UnclosedLambda(t *testing.T) {
	// The inline method ends at the newline with its lambda still open; the next body starts
	// with no open lambdas.
	src := "object o {\n  method f() = [1].map({ n => n\n  method g() { }\n}\n"

	it := lexer.New(Wollok, lexer.WithLogger(quiet())).Lex(src)
	tokens := it.Tokens()

	if got := token.Concat(tokens); got != src {
		t.Errorf("Concat() = %q, want %q", got, src)
	}
	if diff := cmp.Diff([]string{lexer.RootState}, it.Stack()); diff != "" {
		t.Errorf("Iterator.Stack() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainText_Option(t *testing.T) {
	r := testRegistry(t)

	def, opts, err := r.FindFancy("text?token=Literal.String")
	if err != nil {
		t.Fatalf("Registry.FindFancy() error = %v", err)
	}

	got := lexer.New(def, lexer.WithOptions(opts), lexer.WithLogger(quiet())).Tokenize("abc")
	want := []token.Token{{Kind: token.LiteralString, Value: "abc"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}

	got = lexer.New(def, lexer.WithOptions(types.Options{"token": "Nope"}), lexer.WithLogger(quiet())).Tokenize("abc")
	want = []token.Token{{Kind: token.Text, Value: "abc"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestLexers_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n\n",
		"\xff\xfe\x00 binary \x80",
		"/* unterminated",
		`"unterminated`,
		"{[(<>)]}",
		"FROM x\nRUN a \\\n  b\n",
		"Rec {\nf = \\ x -> case x of __DEFAULT -> 1#\nend Rec }",
		"test \"t\" { assert.equals(1, 1) }",
		"é世界 🙂",
	}

	defs, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	for _, def := range defs {
		l := lexer.New(def, lexer.WithLogger(quiet()))
		for _, input := range inputs {
			if got := token.Concat(l.Tokenize(input)); got != input {
				t.Errorf("%v: Concat(Tokenize(%q)) = %q", def, input, got)
			}
		}
	}
}

func TestGuess(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		name  string
		hints registry.Hints
		want  string
	}{
		{name: "dockerfile", hints: registry.Hints{Filename: "Dockerfile"}, want: "docker"},
		{name: "docker extension", hints: registry.Hints{Filename: "docker.docker"}, want: "docker"},
		{name: "docker mimetype", hints: registry.Hints{Mimetype: "text/x-dockerfile-config"}, want: "docker"},
		{name: "docker content", hints: registry.Hints{Source: "# base\nFROM alpine\nRUN true\n"}, want: "docker"},
		{name: "turtle", hints: registry.Hints{Filename: "foo.ttl"}, want: "turtle"},
		{name: "trig", hints: registry.Hints{Filename: "foo.trig"}, want: "turtle"},
		{name: "turtle mimetype", hints: registry.Hints{Mimetype: "text/turtle"}, want: "turtle"},
		{name: "trig mimetype", hints: registry.Hints{Mimetype: "application/trig"}, want: "turtle"},
		{name: "turtle base", hints: registry.Hints{Source: "@base"}, want: "turtle"},
		{name: "turtle prefix", hints: registry.Hints{Source: "@prefix"}, want: "turtle"},
		{name: "prolog content", hints: registry.Hints{Source: "parent(tom, bob).\n"}, want: "prolog"},
		{name: "lustre", hints: registry.Hints{Filename: "counter.lus"}, want: "lustre"},
		{name: "ghc core", hints: registry.Hints{Filename: "Main.dump-simpl"}, want: "ghc-core"},
		{name: "ssh", hints: registry.Hints{Filename: "/etc/ssh/ssh_config"}, want: "ssh"},
		{name: "wollok", hints: registry.Hints{Filename: "main.wlk"}, want: "wollok"},
		{name: "wollok fallback", hints: registry.Hints{Source: "hello"}, want: "wollok"},
		{name: "text", hints: registry.Hints{Filename: "notes.txt"}, want: "plaintext"},
		{name: "json", hints: registry.Hints{Filename: "package.json", Mimetype: "application/json"}, want: "json"},
		{name: "explicit alias", hints: registry.Hints{Tag: "Dockerfile", Filename: "a.json"}, want: "docker"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := r.Best(tt.hints)
			if !ok {
				t.Fatalf("Registry.Best() found nothing, want %v", tt.want)
			}
			if def.Tag() != tt.want {
				t.Errorf("Registry.Best() = %v, want %v", def.Tag(), tt.want)
			}
		})
	}

	if got := r.Guess(registry.Hints{}); len(got) != 0 {
		t.Errorf("Registry.Guess() without hints = %v", got)
	}
}
