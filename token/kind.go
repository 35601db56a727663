// SPDX-License-Identifier: MIT
package token

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type (
	// Kind identifies a node in the token taxonomy.
	Kind int

	// entry declares a Kind's position & names in the taxonomy.
	entry struct {
		kind   Kind
		parent Kind
		name   string
		short  string
	}

	// taxonomy holds the built Kind tree & name indices.
	taxonomy struct {
		tree    *tree[Kind]
		entries map[Kind]entry
		byName  map[string]Kind
	}
)

// Kinds; the numbering starts at 1, the zero value is not a Kind.
const (
	_ Kind = iota

	Text
	Whitespace
	Error
	Other
	Escape

	Keyword
	KeywordConstant
	KeywordDeclaration
	KeywordNamespace
	KeywordPseudo
	KeywordReserved
	KeywordType
	KeywordVariable

	Name
	NameAttribute
	NameBuiltin
	NameBuiltinPseudo
	NameClass
	NameConstant
	NameDecorator
	NameEntity
	NameException
	NameFunction
	NameFunctionMagic
	NameProperty
	NameLabel
	NameNamespace
	NameOther
	NameTag
	NameVariable
	NameVariableClass
	NameVariableGlobal
	NameVariableInstance
	NameVariableMagic

	Literal
	LiteralDate
	LiteralString
	StringAffix
	StringBacktick
	StringChar
	StringDelimiter
	StringDoc
	StringDouble
	StringEscape
	StringHeredoc
	StringInterpol
	StringOther
	StringRegex
	StringSingle
	StringSymbol
	LiteralNumber
	NumberBin
	NumberFloat
	NumberHex
	NumberInteger
	NumberIntegerLong
	NumberOct
	NumberOther

	Operator
	OperatorWord

	Punctuation
	PunctuationIndicator

	Comment
	CommentHashbang
	CommentDoc
	CommentMultiline
	CommentPreproc
	CommentPreprocFile
	CommentSingle
	CommentSpecial

	Generic
	GenericDeleted
	GenericEmph
	GenericError
	GenericHeading
	GenericInserted
	GenericLineno
	GenericOutput
	GenericPrompt
	GenericStrong
	GenericSubheading
	GenericTraceback
)

// The top-level kinds hang off Text in the tree but their names don't carry the "Text." prefix.
var entries = []entry{
	{Text, 0, "Text", ""},
	{Whitespace, Text, "Text.Whitespace", "w"},
	{Error, Text, "Error", "err"},
	{Other, Text, "Other", "x"},
	{Escape, Text, "Escape", "esc"},

	{Keyword, Text, "Keyword", "k"},
	{KeywordConstant, Keyword, "Keyword.Constant", "kc"},
	{KeywordDeclaration, Keyword, "Keyword.Declaration", "kd"},
	{KeywordNamespace, Keyword, "Keyword.Namespace", "kn"},
	{KeywordPseudo, Keyword, "Keyword.Pseudo", "kp"},
	{KeywordReserved, Keyword, "Keyword.Reserved", "kr"},
	{KeywordType, Keyword, "Keyword.Type", "kt"},
	{KeywordVariable, Keyword, "Keyword.Variable", "kv"},

	{Name, Text, "Name", "n"},
	{NameAttribute, Name, "Name.Attribute", "na"},
	{NameBuiltin, Name, "Name.Builtin", "nb"},
	{NameBuiltinPseudo, NameBuiltin, "Name.Builtin.Pseudo", "bp"},
	{NameClass, Name, "Name.Class", "nc"},
	{NameConstant, Name, "Name.Constant", "no"},
	{NameDecorator, Name, "Name.Decorator", "nd"},
	{NameEntity, Name, "Name.Entity", "ni"},
	{NameException, Name, "Name.Exception", "ne"},
	{NameFunction, Name, "Name.Function", "nf"},
	{NameFunctionMagic, NameFunction, "Name.Function.Magic", "fm"},
	{NameProperty, Name, "Name.Property", "py"},
	{NameLabel, Name, "Name.Label", "nl"},
	{NameNamespace, Name, "Name.Namespace", "nn"},
	{NameOther, Name, "Name.Other", "nx"},
	{NameTag, Name, "Name.Tag", "nt"},
	{NameVariable, Name, "Name.Variable", "nv"},
	{NameVariableClass, NameVariable, "Name.Variable.Class", "vc"},
	{NameVariableGlobal, NameVariable, "Name.Variable.Global", "vg"},
	{NameVariableInstance, NameVariable, "Name.Variable.Instance", "vi"},
	{NameVariableMagic, NameVariable, "Name.Variable.Magic", "vm"},

	{Literal, Text, "Literal", "l"},
	{LiteralDate, Literal, "Literal.Date", "ld"},
	{LiteralString, Literal, "Literal.String", "s"},
	{StringAffix, LiteralString, "Literal.String.Affix", "sa"},
	{StringBacktick, LiteralString, "Literal.String.Backtick", "sb"},
	{StringChar, LiteralString, "Literal.String.Char", "sc"},
	{StringDelimiter, LiteralString, "Literal.String.Delimiter", "dl"},
	{StringDoc, LiteralString, "Literal.String.Doc", "sd"},
	{StringDouble, LiteralString, "Literal.String.Double", "s2"},
	{StringEscape, LiteralString, "Literal.String.Escape", "se"},
	{StringHeredoc, LiteralString, "Literal.String.Heredoc", "sh"},
	{StringInterpol, LiteralString, "Literal.String.Interpol", "si"},
	{StringOther, LiteralString, "Literal.String.Other", "sx"},
	{StringRegex, LiteralString, "Literal.String.Regex", "sr"},
	{StringSingle, LiteralString, "Literal.String.Single", "s1"},
	{StringSymbol, LiteralString, "Literal.String.Symbol", "ss"},
	{LiteralNumber, Literal, "Literal.Number", "m"},
	{NumberBin, LiteralNumber, "Literal.Number.Bin", "mb"},
	{NumberFloat, LiteralNumber, "Literal.Number.Float", "mf"},
	{NumberHex, LiteralNumber, "Literal.Number.Hex", "mh"},
	{NumberInteger, LiteralNumber, "Literal.Number.Integer", "mi"},
	{NumberIntegerLong, NumberInteger, "Literal.Number.Integer.Long", "il"},
	{NumberOct, LiteralNumber, "Literal.Number.Oct", "mo"},
	{NumberOther, LiteralNumber, "Literal.Number.Other", "mx"},

	{Operator, Text, "Operator", "o"},
	{OperatorWord, Operator, "Operator.Word", "ow"},

	{Punctuation, Text, "Punctuation", "p"},
	{PunctuationIndicator, Punctuation, "Punctuation.Indicator", "pi"},

	{Comment, Text, "Comment", "c"},
	{CommentHashbang, Comment, "Comment.Hashbang", "ch"},
	{CommentDoc, Comment, "Comment.Doc", "cd"},
	{CommentMultiline, Comment, "Comment.Multiline", "cm"},
	{CommentPreproc, Comment, "Comment.Preproc", "cp"},
	{CommentPreprocFile, Comment, "Comment.PreprocFile", "cpf"},
	{CommentSingle, Comment, "Comment.Single", "c1"},
	{CommentSpecial, Comment, "Comment.Special", "cs"},

	{Generic, Text, "Generic", "g"},
	{GenericDeleted, Generic, "Generic.Deleted", "gd"},
	{GenericEmph, Generic, "Generic.Emph", "ge"},
	{GenericError, Generic, "Generic.Error", "gr"},
	{GenericHeading, Generic, "Generic.Heading", "gh"},
	{GenericInserted, Generic, "Generic.Inserted", "gi"},
	{GenericLineno, Generic, "Generic.Lineno", "gl"},
	{GenericOutput, Generic, "Generic.Output", "go"},
	{GenericPrompt, Generic, "Generic.Prompt", "gp"},
	{GenericStrong, Generic, "Generic.Strong", "gs"},
	{GenericSubheading, Generic, "Generic.Subheading", "gu"},
	{GenericTraceback, Generic, "Generic.Traceback", "gt"},
}

var tax = mustBuildTaxonomy(entries)

// Value implements Builder.
func (e entry) Value() Kind { return e.kind }

// Parent implements Builder.
func (e entry) Parent() Kind { return e.parent }

// buildTaxonomy arranges the entries into a tree & indexes their names.
func buildTaxonomy(list []entry) (t *taxonomy, err error) {
	builders := make([]Builder[Kind], len(list))
	t = &taxonomy{
		entries: make(map[Kind]entry, len(list)),
		byName:  make(map[string]Kind, len(list)),
	}

	for index, e := range list {
		if _, ok := t.byName[e.name]; ok {
			err = fmt.Errorf("%w: duplicate name %q", ErrBuildTaxonomy, e.name)
			return
		}

		builders[index] = e
		t.entries[e.kind] = e
		t.byName[e.name] = e.kind
	}

	logger := logrus.New()
	if t.tree, err = newBuildSource(builders, logger, logger.IsLevelEnabled(logrus.DebugLevel)).Build(context.Background()); err != nil {
		t = nil
	}

	return
}

func mustBuildTaxonomy(list []entry) *taxonomy {
	t, err := buildTaxonomy(list)
	if err != nil {
		panic(err)
	}

	return t
}

// String returns the Kind's dotted name, e.g. "Literal.String.Double".
func (k Kind) String() string {
	if e, ok := tax.entries[k]; ok {
		return e.name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Short returns the Kind's stable abbreviation, e.g. "s2"; Text's is empty.
func (k Kind) Short() string { return tax.entries[k].short }

// Valid reports whether the Kind is part of the taxonomy.
func (k Kind) Valid() bool {
	_, ok := tax.entries[k]
	return ok
}

// Parent returns the Kind's parent; Text has none & returns itself.
func (k Kind) Parent() Kind {
	e, ok := tax.entries[k]
	if !ok || e.parent == 0 {
		return Text
	}

	return e.parent
}

// IsA reports whether the Kind is ancestor or one of its descendants.
//
// Every Kind is a Text.
func IsA(k, ancestor Kind) bool {
	node, err := tax.tree.locate(k)
	if err != nil {
		return false
	}

	for ; node != nil; node = node.parent {
		if node.value == ancestor {
			return true
		}
	}

	return false
}

// IsA is the method form of the package IsA function.
func (k Kind) IsA(ancestor Kind) bool { return IsA(k, ancestor) }

// Lookup resolves a dotted name to its Kind.
func Lookup(name string) (k Kind, ok bool) {
	k, ok = tax.byName[name]
	return
}

// Kinds lists every Kind in level order, siblings ordered by value.
func Kinds(ctx context.Context) []Kind { return tax.tree.values(ctx, false) }

// Leaves lists the Kinds without children.
func Leaves(ctx context.Context) []Kind { return tax.tree.values(ctx, true) }
