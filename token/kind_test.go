// SPDX-License-Identifier: MIT
package token

import (
	"context"
	"reflect"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name      string
		k         Kind
		wantName  string
		wantShort string
	}{
		{name: "root", k: Text, wantName: "Text", wantShort: ""},
		{name: "top level", k: Keyword, wantName: "Keyword", wantShort: "k"},
		{name: "nested", k: StringDouble, wantName: "Literal.String.Double", wantShort: "s2"},
		{name: "deep", k: NumberIntegerLong, wantName: "Literal.Number.Integer.Long", wantShort: "il"},
		{name: "whitespace", k: Whitespace, wantName: "Text.Whitespace", wantShort: "w"},
		{name: "error", k: Error, wantName: "Error", wantShort: "err"},
		{name: "invalid", k: Kind(0), wantName: "Kind(0)", wantShort: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.String(); got != tt.wantName {
				t.Errorf("Kind.String() = %v, want %v", got, tt.wantName)
			}
			if got := tt.k.Short(); got != tt.wantShort {
				t.Errorf("Kind.Short() = %v, want %v", got, tt.wantShort)
			}
		})
	}
}

func TestIsA(t *testing.T) {
	tests := []struct {
		name     string
		k        Kind
		ancestor Kind
		want     bool
	}{
		{name: "self", k: Comment, ancestor: Comment, want: true},
		{name: "parent", k: CommentSingle, ancestor: Comment, want: true},
		{name: "grandparent", k: StringDouble, ancestor: Literal, want: true},
		{name: "root", k: NameFunctionMagic, ancestor: Text, want: true},
		{name: "sibling", k: CommentSingle, ancestor: CommentMultiline, want: false},
		{name: "descendant", k: Literal, ancestor: StringDouble, want: false},
		{name: "other branch", k: KeywordType, ancestor: Name, want: false},
		{name: "invalid", k: Kind(-1), ancestor: Text, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsA(tt.k, tt.ancestor); got != tt.want {
				t.Errorf("IsA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds(context.Background())
	if len(kinds) != len(entries) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(kinds), len(entries))
	}
	if kinds[0] != Text {
		t.Errorf("Kinds()[0] = %v, want Text", kinds[0])
	}

	shorts := make(map[string]Kind)
	for _, k := range kinds {
		if k == Text {
			continue
		}
		if other, ok := shorts[k.Short()]; ok {
			t.Errorf("short name %q shared by %v and %v", k.Short(), k, other)
		}
		shorts[k.Short()] = k

		if got, ok := Lookup(k.String()); !ok || got != k {
			t.Errorf("Lookup(%q) = %v, %v", k.String(), got, ok)
		}
	}

	if !reflect.DeepEqual(kinds, Kinds(context.Background())) {
		t.Error("Kinds() is not deterministic")
	}
}

func TestLeaves(t *testing.T) {
	for _, k := range Leaves(context.Background()) {
		for _, other := range entries {
			if other.parent == k {
				t.Errorf("leaf %v has child %v", k, other.kind)
			}
		}
	}
}

func TestKind_Parent(t *testing.T) {
	if got := StringDouble.Parent(); got != LiteralString {
		t.Errorf("Kind.Parent() = %v, want %v", got, LiteralString)
	}
	if got := Text.Parent(); got != Text {
		t.Errorf("Kind.Parent() = %v, want %v", got, Text)
	}
}

func TestBuildTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		list    []entry
		wantErr bool
	}{
		{
			name: "unordered",
			list: []entry{{Keyword, Text, "Keyword", "k"}, {Text, 0, "Text", ""}, {KeywordType, Keyword, "Keyword.Type", "kt"}},
		},
		{
			name:    "empty",
			list:    []entry{},
			wantErr: true,
		},
		{
			name:    "missing root node",
			list:    []entry{{Keyword, Text, "Keyword", "k"}},
			wantErr: true,
		},
		{
			name:    "multiple root nodes",
			list:    []entry{{Text, 0, "Text", ""}, {Error, 0, "Error", "err"}},
			wantErr: true,
		},
		{
			name:    "unreachable parent",
			list:    []entry{{Text, 0, "Text", ""}, {KeywordType, Keyword, "Keyword.Type", "kt"}},
			wantErr: true,
		},
		{
			name:    "duplicate name",
			list:    []entry{{Text, 0, "Text", ""}, {Keyword, Text, "Text", "k"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildTaxonomy(tt.list)
			if (err != nil) != tt.wantErr {
				t.Errorf("buildTaxonomy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.tree.value != Text {
				t.Errorf("buildTaxonomy() root = %v, want Text", got.tree.value)
			}
		})
	}
}
