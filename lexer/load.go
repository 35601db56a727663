// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v2"

	"gitlab.com/fisherprime/hilite/token"
	"gitlab.com/fisherprime/hilite/types"
)

type (
	// yamlDefinition is the declarative form of a Definition.
	yamlDefinition struct {
		Tag         string            `yaml:"tag"`
		Title       string            `yaml:"title"`
		Description string            `yaml:"description"`
		Aliases     []string          `yaml:"aliases"`
		Filenames   []string          `yaml:"filenames"`
		Mimetypes   []string          `yaml:"mimetypes"`
		Priority    float64           `yaml:"priority"`
		Options     map[string]string `yaml:"options"`

		Analyze []yamlAnalyzer        `yaml:"analyze"`
		States  map[string][]yamlRule `yaml:"states"`
	}

	yamlRule struct {
		Pattern string   `yaml:"pattern"`
		Kind    string   `yaml:"kind"`
		Groups  []string `yaml:"groups"`
		Include string   `yaml:"include"`

		Push string `yaml:"push"`
		Pop  int    `yaml:"pop"`
		Goto string `yaml:"goto"`
	}

	// yamlAnalyzer scores a sample matching Pattern; the highest matching score wins.
	yamlAnalyzer struct {
		Pattern string  `yaml:"pattern"`
		Score   float64 `yaml:"score"`
	}

	analyzer struct {
		re    *regexp2.Regexp
		score float64
	}
)

// Loading errors.
var (
	ErrInvalidYAML     = errors.New("invalid YAML definition")
	ErrManyTransitions = errors.New("rule has more than one transition")
	ErrInvalidAnalyzer = errors.New("invalid analyzer")
	ErrUnknownKindName = errors.New("unknown token kind name")
)

// LoadYAML reads a declarative Definition.
func LoadYAML(r io.Reader, opts ...BuildOption) (d *Definition, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return ParseYAML(data, opts...)
}

// ParseYAML builds a Definition from YAML data.
func ParseYAML(data []byte, opts ...BuildOption) (d *Definition, err error) {
	var src yamlDefinition
	if err = yaml.UnmarshalStrict(data, &src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	meta := Meta{
		Tag:         src.Tag,
		Title:       src.Title,
		Description: src.Description,
		Aliases:     src.Aliases,
		Filenames:   src.Filenames,
		Mimetypes:   src.Mimetypes,
		Priority:    src.Priority,
		Options:     src.options(),
	}

	if meta.Analyze, err = src.analyzer(); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrDefinition, src.Tag, err)
	}

	states := make(States, len(src.States))
	for name, rules := range src.States {
		converted := make([]Rule, len(rules))
		for index, rule := range rules {
			if converted[index], err = rule.rule(); err != nil {
				return nil, fmt.Errorf("%w (%s): state (%s) rule %d: %v", ErrDefinition, src.Tag, name, index, err)
			}
		}
		states[name] = converted
	}

	return NewDefinition(meta, states, opts...)
}

func (y yamlRule) rule() (r Rule, err error) {
	if y.Include != "" {
		return Include(y.Include), nil
	}

	r.Pattern = y.Pattern
	if y.Kind != "" {
		if r.Kind, err = lookupKind(y.Kind); err != nil {
			return
		}
	}

	for _, name := range y.Groups {
		var k token.Kind
		if k, err = lookupKind(name); err != nil {
			return
		}
		r.Groups = append(r.Groups, k)
	}

	transitions := 0
	if y.Push != "" {
		r.Next = Push(y.Push)
		transitions++
	}
	if y.Pop != 0 {
		r.Next = Pop(y.Pop)
		transitions++
	}
	if y.Goto != "" {
		r.Next = Goto(y.Goto)
		transitions++
	}
	if transitions > 1 {
		err = ErrManyTransitions
	}

	return
}

// options lower-cases the option keys, matching types.ParseOptions.
func (y yamlDefinition) options() (opts types.Options) {
	opts = make(types.Options, len(y.Options))
	for key, val := range y.Options {
		opts[strings.ToLower(key)] = val
	}

	return
}

func lookupKind(name string) (k token.Kind, err error) {
	k, ok := token.Lookup(name)
	if !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownKindName, name)
	}

	return
}

func (y yamlDefinition) analyzer() (fn AnalyzeFunc, err error) {
	if len(y.Analyze) < 1 {
		return
	}

	analyzers := make([]analyzer, len(y.Analyze))
	for index, a := range y.Analyze {
		if a.Score < 0 || a.Score > 1 {
			return nil, fmt.Errorf("%w: score %v outside [0,1]", ErrInvalidAnalyzer, a.Score)
		}

		var re *regexp2.Regexp
		if re, err = regexp2.Compile(a.Pattern, regexp2.Multiline); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAnalyzer, a.Pattern, err)
		}
		analyzers[index] = analyzer{re: re, score: a.Score}
	}

	fn = func(sample string) (score float64) {
		for _, a := range analyzers {
			if a.score <= score {
				continue
			}
			if ok, matchErr := a.re.MatchString(sample); matchErr == nil && ok {
				score = a.score
			}
		}

		return
	}

	return
}
