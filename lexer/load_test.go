// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/fisherprime/hilite/token"
	"gitlab.com/fisherprime/hilite/types"
)

const iniYAML = `
tag: ini
title: INI
aliases: [cfg]
filenames: ["*.ini"]
mimetypes: [text/x-ini]
priority: 0.1
analyze:
  - pattern: '^\[\w+\]$'
    score: 0.3
states:
  root:
    - pattern: '\s+'
      kind: Text.Whitespace
    - pattern: '[;#].*$'
      kind: Comment.Single
    - pattern: '(\[)(\w+)(\])'
      groups: [Punctuation, Keyword, Punctuation]
    - pattern: '\w+'
      kind: Name.Attribute
      push: value
  value:
    - include: spaces
    - pattern: '='
      kind: Operator
    - pattern: '[^\n]+'
      kind: Literal.String
      pop: 1
  spaces:
    - pattern: '[ \t]+'
      kind: Text.Whitespace
`

func TestParseYAML(t *testing.T) {
	d, err := ParseYAML([]byte(iniYAML), WithBuildLogger(quietLogger()))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	if d.Tag() != "ini" || d.Title() != "INI" || d.Priority() != 0.1 {
		t.Errorf("ParseYAML() meta = %s %s %v", d.Tag(), d.Title(), d.Priority())
	}
	if diff := cmp.Diff([]string{"*.ini"}, d.Filenames()); diff != "" {
		t.Errorf("Definition.Filenames() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{RootState, "spaces", "value"}, d.States()); diff != "" {
		t.Errorf("Definition.States() mismatch (-want +got):\n%s", diff)
	}

	if got := d.Analyze("x\n[main]\n"); got != 0.3 {
		t.Errorf("Definition.Analyze() = %v, want 0.3", got)
	}
	if got := d.Analyze("x = 1"); got != 0 {
		t.Errorf("Definition.Analyze() = %v, want 0", got)
	}

	got := token.Coalesce(New(d).Tokenize("[main]\nkey = some value\n; done"))
	want := []token.Token{
		{Kind: token.Punctuation, Value: "["},
		{Kind: token.Keyword, Value: "main"},
		{Kind: token.Punctuation, Value: "]"},
		{Kind: token.Whitespace, Value: "\n"},
		{Kind: token.NameAttribute, Value: "key"},
		{Kind: token.Whitespace, Value: " "},
		{Kind: token.Operator, Value: "="},
		{Kind: token.Whitespace, Value: " "},
		{Kind: token.LiteralString, Value: "some value"},
		{Kind: token.Whitespace, Value: "\n"},
		{Kind: token.CommentSingle, Value: "; done"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lexer.Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML_Options(t *testing.T) {
	data := "tag: a\noptions:\n  Debug: \"true\"\n  Token: Name.Tag\nstates:\n  root:\n    - pattern: a\n      kind: Text\n"

	d, err := ParseYAML([]byte(data), WithBuildLogger(quietLogger()))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	want := types.Options{"debug": "true", "token": "Name.Tag"}
	if diff := cmp.Diff(want, d.Options()); diff != "" {
		t.Errorf("Definition.Options() mismatch (-want +got):\n%s", diff)
	}
	if !New(d, WithLogger(quietLogger())).IsDebug() {
		t.Error("Lexer.IsDebug() = false with a declared debug option")
	}
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "malformed", data: "tag: [", wantErr: ErrInvalidYAML},
		{name: "unknown field", data: "tag: a\nbogus: 1\n", wantErr: ErrInvalidYAML},
		{
			name:    "unknown kind",
			data:    "tag: a\nstates:\n  root:\n    - pattern: a\n      kind: Nope\n",
			wantErr: ErrUnknownKindName,
		},
		{
			name:    "many transitions",
			data:    "tag: a\nstates:\n  root:\n    - pattern: a\n      kind: Text\n      push: root\n      pop: 1\n",
			wantErr: ErrManyTransitions,
		},
		{
			name:    "analyzer score",
			data:    "tag: a\nanalyze:\n  - pattern: a\n    score: 2\nstates:\n  root:\n    - pattern: a\n      kind: Text\n",
			wantErr: ErrInvalidAnalyzer,
		},
		{
			name:    "negative pop",
			data:    "tag: a\nstates:\n  root:\n    - pattern: a\n      kind: Text\n      pop: -1\n",
			wantErr: ErrInvalidPop,
		},
		{
			name:    "missing root",
			data:    "tag: a\nstates:\n  other:\n    - pattern: a\n      kind: Text\n",
			wantErr: ErrMissingRoot,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.data), WithBuildLogger(quietLogger()))
			if err == nil {
				t.Fatalf("LoadYAML() error = nil, want %v", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) && !strings.Contains(err.Error(), tt.wantErr.Error()) {
				t.Errorf("LoadYAML() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
