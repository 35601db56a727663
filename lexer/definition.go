// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/hilite/types"
)

type (
	// AnalyzeFunc scores how likely a sample is written in a Definition's language, in [0,1].
	AnalyzeFunc func(sample string) float64

	// Meta holds a Definition's descriptive & guessing data.
	Meta struct {
		Tag         string
		Title       string
		Description string

		Aliases   []string
		Filenames []string
		Mimetypes []string

		// Priority breaks guessing ties, higher first.
		Priority float64

		Analyze AnalyzeFunc

		// Options are the default lexer options.
		Options types.Options
	}

	// Definition is an immutable, compiled lexer definition.
	Definition struct {
		tag         string
		title       string
		description string

		aliases   types.StringSlice
		filenames types.StringSlice
		mimetypes types.StringSlice

		priority float64
		analyze  AnalyzeFunc
		options  types.Options

		states map[string]*state
	}

	// state is a named, mixin-flattened rule list.
	state struct {
		name  string
		rules []*compiledRule
	}

	compiledRule struct {
		Rule

		// origin names the state the rule was declared in.
		origin string
		re     *regexp2.Regexp
	}

	builder struct {
		debug        bool
		logger       logrus.FieldLogger
		regexOptions regexp2.RegexOptions
		matchTimeout time.Duration

		declared States
		compiled map[string][]*compiledRule
		flat     map[string]*state
	}
)

// Definition errors.
var (
	ErrDefinition = errors.New("invalid lexer definition")

	ErrMissingTag     = errors.New("missing tag")
	ErrMissingRoot    = errors.New("missing root state")
	ErrUnknownState   = errors.New("unknown state")
	ErrCyclicMixin    = errors.New("cyclic mixin")
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrNoAction       = errors.New("rule lacks an action")
	ErrGroupMismatch  = errors.New("group kinds do not match the pattern's capture groups")
	ErrInvalidPop     = errors.New("pop depth must be positive")
	ErrInvalidKind    = errors.New("invalid token kind")
)

// NewDefinition compiles states into a Definition.
//
// Mixins are flattened & every transition target is checked here; scanning never fails on
// definition structure.
func NewDefinition(meta Meta, states States, opts ...BuildOption) (d *Definition, err error) {
	b := &builder{
		logger:       logrus.New(),
		regexOptions: regexp2.Multiline,
		declared:     states,
		compiled:     make(map[string][]*compiledRule, len(states)),
		flat:         make(map[string]*state, len(states)),
	}
	for _, opt := range opts {
		opt(b)
	}

	defer func() {
		if err != nil {
			if b.debug {
				b.logger.Debugf("definition %q build state: %s", meta.Tag, spew.Sdump(b.flat))
			}
			d, err = nil, fmt.Errorf("%w (%s): %v", ErrDefinition, meta.Tag, err)
		}
	}()

	if strings.TrimSpace(meta.Tag) == "" {
		err = ErrMissingTag
		return
	}
	if _, ok := states[RootState]; !ok {
		err = ErrMissingRoot
		return
	}

	names := maps.Keys(states)
	slices.Sort(names)

	for _, name := range names {
		if err = b.compile(name); err != nil {
			return
		}
	}
	for _, name := range names {
		if _, err = b.flatten(name, nil); err != nil {
			return
		}
	}

	options := make(types.Options)
	d = &Definition{
		tag:         meta.Tag,
		title:       meta.Title,
		description: meta.Description,
		aliases:     types.NewStringSlice(meta.Aliases...),
		filenames:   types.NewStringSlice(meta.Filenames...),
		mimetypes:   types.NewStringSlice(meta.Mimetypes...),
		priority:    meta.Priority,
		analyze:     meta.Analyze,
		options:     options.Merge(meta.Options),
		states:      b.flat,
	}
	if d.title == "" {
		d.title = d.tag
	}

	return
}

// MustDefinition is NewDefinition panicking on error, for statically declared definitions.
func MustDefinition(meta Meta, states States, opts ...BuildOption) *Definition {
	d, err := NewDefinition(meta, states, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// compile validates & compiles the rules declared directly in a state.
func (b *builder) compile(name string) (err error) {
	rules := b.declared[name]
	compiled := make([]*compiledRule, len(rules))

	for index, rule := range rules {
		if rule.Include != "" {
			if _, ok := b.declared[rule.Include]; !ok {
				return fmt.Errorf("%w (%s) included by (%s)", ErrUnknownState, rule.Include, name)
			}
			compiled[index] = &compiledRule{Rule: rule, origin: name}

			continue
		}

		if err = b.validate(name, index, rule); err != nil {
			return
		}

		var re *regexp2.Regexp
		if re, err = regexp2.Compile(`\G(?:`+rule.Pattern+`)`, b.regexOptions); err != nil {
			return fmt.Errorf("%w (%s) rule %d %q: %v", ErrInvalidPattern, name, index, rule.Pattern, err)
		}
		if b.matchTimeout > 0 {
			re.MatchTimeout = b.matchTimeout
		}

		if groups := len(re.GetGroupNumbers()) - 1; len(rule.Groups) > 0 && len(rule.Groups) != groups {
			return fmt.Errorf("%w (%s) rule %d: %d kinds, %d groups", ErrGroupMismatch, name, index, len(rule.Groups), groups)
		}

		compiled[index] = &compiledRule{Rule: rule, origin: name, re: re}
	}
	b.compiled[name] = compiled

	return
}

func (b *builder) validate(name string, index int, rule Rule) (err error) {
	actions := 0
	if rule.Kind != 0 {
		if !rule.Kind.Valid() {
			return fmt.Errorf("%w (%s) rule %d: %v", ErrInvalidKind, name, index, rule.Kind)
		}
		actions++
	}
	if len(rule.Groups) > 0 {
		for _, k := range rule.Groups {
			if !k.Valid() {
				return fmt.Errorf("%w (%s) rule %d: %v", ErrInvalidKind, name, index, k)
			}
		}
		actions++
	}
	if rule.Callback != nil {
		actions++
	}
	if actions != 1 {
		return fmt.Errorf("%w (%s) rule %d %q", ErrNoAction, name, index, rule.Pattern)
	}

	switch rule.Next.Op {
	case OpPush, OpGoto:
		if _, ok := b.declared[rule.Next.State]; !ok {
			return fmt.Errorf("%w (%s) in %v from (%s) rule %d", ErrUnknownState, rule.Next.State, rule.Next, name, index)
		}
	case OpPop:
		if rule.Next.Depth < 1 {
			return fmt.Errorf("%w (%s) rule %d", ErrInvalidPop, name, index)
		}
	}

	return
}

// flatten splices mixins into a single ordered rule list; visiting tracks the mixin chain.
func (b *builder) flatten(name string, visiting []string) (s *state, err error) {
	if s = b.flat[name]; s != nil {
		return
	}

	if slices.Contains(visiting, name) {
		err = fmt.Errorf("%w: %s", ErrCyclicMixin, strings.Join(append(visiting, name), " -> "))
		return
	}
	visiting = append(visiting, name)

	s = &state{name: name}
	for _, rule := range b.compiled[name] {
		if rule.Include == "" {
			s.rules = append(s.rules, rule)
			continue
		}

		var mixin *state
		if mixin, err = b.flatten(rule.Include, visiting); err != nil {
			s = nil
			return
		}
		s.rules = append(s.rules, mixin.rules...)
	}
	b.flat[name] = s

	return
}

// Tag retrieves the Definition's unique tag.
func (d *Definition) Tag() string { return d.tag }

// Title retrieves the Definition's human readable name.
func (d *Definition) Title() string { return d.title }

// Description retrieves the Definition's description.
func (d *Definition) Description() string { return d.description }

// Aliases retrieves a copy of the Definition's aliases.
func (d *Definition) Aliases() []string { return d.aliases.Clone() }

// Filenames retrieves a copy of the Definition's filename globs.
func (d *Definition) Filenames() []string { return d.filenames.Clone() }

// Mimetypes retrieves a copy of the Definition's mimetypes.
func (d *Definition) Mimetypes() []string { return d.mimetypes.Clone() }

// Priority retrieves the Definition's guessing priority.
func (d *Definition) Priority() float64 { return d.priority }

// Options retrieves a copy of the Definition's default options.
func (d *Definition) Options() types.Options { return d.options.Merge(nil) }

// HasAnalyzer reports whether the Definition scores content samples.
func (d *Definition) HasAnalyzer() bool { return d.analyze != nil }

// Analyze scores a sample, clamped to [0,1]; Definitions without an analyzer score 0.
func (d *Definition) Analyze(sample string) float64 {
	if d.analyze == nil {
		return 0
	}

	score := d.analyze(sample)
	switch {
	case math.IsNaN(score), score < 0:
		return 0
	case score > 1:
		return 1
	}

	return score
}

// States lists the Definition's state names, sorted.
func (d *Definition) States() []string {
	names := maps.Keys(d.states)
	slices.Sort(names)

	return names
}

// HasState reports whether the Definition declares a state.
func (d *Definition) HasState(name string) bool {
	_, ok := d.states[name]
	return ok
}

// RuleCount retrieves the number of mixin-flattened rules in a state.
func (d *Definition) RuleCount(name string) int {
	if s, ok := d.states[name]; ok {
		return len(s.rules)
	}

	return 0
}

// String implements fmt.Stringer.
func (d *Definition) String() string { return fmt.Sprintf("Definition(%s)", d.tag) }
