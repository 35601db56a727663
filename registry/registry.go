// SPDX-License-Identifier: MIT

// Package registry catalogs lexer Definitions & guesses which one fits a source.
//
// A Registry is populated during initialization then frozen; a frozen Registry is read-only &
// safe for concurrent use without further synchronization.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/types"
)

type (
	// Option defines the Registry functional option type.
	Option func(*Registry)

	// Registry is a catalog of lexer Definitions keyed by tag & alias.
	Registry struct {
		logger  logrus.FieldLogger
		weights Weights

		frozen bool

		// entries is keyed by lower-case tag; tags is sorted.
		entries map[string]*entry
		aliases map[string]string
		tags    []string
	}

	// entry caches a Definition's normalized guessing data.
	entry struct {
		def       *lexer.Definition
		globs     []filenameGlob
		mimetypes types.StringSlice
		names     types.StringSlice
	}
)

// Registry errors.
var (
	ErrFrozen    = errors.New("registry is frozen")
	ErrDuplicate = errors.New("duplicate tag or alias")
	ErrNotFound  = errors.New("lexer not found")
	ErrNilDef    = errors.New("nil definition")
)

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(r *Registry) { r.logger = logger } }

// WithWeights replaces the guessing Weights.
func WithWeights(w Weights) Option { return func(r *Registry) { r.weights = w } }

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:  logrus.New(),
		weights: DefaultWeights(),
		entries: make(map[string]*entry),
		aliases: make(map[string]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds Definitions to the Registry.
//
// Definitions preceding a failing one remain registered.
func (r *Registry) Register(defs ...*lexer.Definition) (err error) {
	for _, def := range defs {
		if err = r.register(def); err != nil {
			return
		}
	}

	return
}

// MustRegister is Register panicking on error, for statically declared definitions.
func (r *Registry) MustRegister(defs ...*lexer.Definition) {
	if err := r.Register(defs...); err != nil {
		panic(err)
	}
}

func (r *Registry) register(def *lexer.Definition) (err error) {
	if def == nil {
		return fmt.Errorf("%w: %w", lexer.ErrDefinition, ErrNilDef)
	}
	if r.frozen {
		return fmt.Errorf("%w: registering (%s)", ErrFrozen, def.Tag())
	}

	tag := strings.ToLower(def.Tag())
	if r.taken(tag) {
		return fmt.Errorf("%w: %w: tag (%s)", lexer.ErrDefinition, ErrDuplicate, def.Tag())
	}

	e := &entry{
		def:       def,
		mimetypes: types.NewStringSlice(),
		names:     types.NewStringSlice(tag),
	}

	for _, alias := range def.Aliases() {
		alias = strings.ToLower(alias)
		if alias == tag {
			continue
		}
		if r.taken(alias) || e.names.Contains(alias) {
			return fmt.Errorf("%w: %w: alias (%s) of (%s)", lexer.ErrDefinition, ErrDuplicate, alias, def.Tag())
		}
		e.names.UniqueAppend(alias)
	}

	if e.globs, err = compileGlobs(def.Filenames()); err != nil {
		return fmt.Errorf("%w (%s): %v", lexer.ErrDefinition, def.Tag(), err)
	}
	for _, mimetype := range def.Mimetypes() {
		e.mimetypes.UniqueAppend(normalizeMimetype(mimetype))
	}

	r.entries[tag] = e
	for _, alias := range e.names[1:] {
		r.aliases[alias] = tag
	}

	index, _ := slices.BinarySearch(r.tags, tag)
	r.tags = slices.Insert(r.tags, index, tag)

	r.logger.WithField("tag", def.Tag()).Debug("registered lexer")

	return
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.entries[name]; ok {
		return true
	}
	_, ok := r.aliases[name]

	return ok
}

// Freeze makes the Registry read-only.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether the Registry is read-only.
func (r *Registry) Frozen() bool { return r.frozen }

// Len retrieves the number of registered Definitions.
func (r *Registry) Len() int { return len(r.tags) }

// Weights retrieves the guessing Weights.
func (r *Registry) Weights() Weights { return r.weights }

// Find retrieves a Definition by tag, then by alias; case-insensitive.
func (r *Registry) Find(name string) (def *lexer.Definition, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	if e, found := r.entries[name]; found {
		return e.def, true
	}
	if tag, found := r.aliases[name]; found {
		return r.entries[tag].def, true
	}

	return
}

// FindFancy resolves "tag?key=value&flag" to a Definition & its lexer options.
func (r *Registry) FindFancy(query string) (def *lexer.Definition, opts types.Options, err error) {
	name, raw, _ := strings.Cut(query, "?")

	var ok bool
	if def, ok = r.Find(name); !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if opts, err = types.ParseOptions(raw); err != nil {
		return nil, nil, err
	}

	return
}

// All lists the registered Definitions sorted by tag.
func (r *Registry) All() (defs []*lexer.Definition) {
	defs = make([]*lexer.Definition, 0, len(r.tags))
	for _, tag := range r.tags {
		defs = append(defs, r.entries[tag].def)
	}

	return
}

// Names lists the registered tags, sorted; aliases are included when withAliases is set.
func (r *Registry) Names(withAliases bool) (names []string) {
	names = slices.Clone(r.tags)
	if !withAliases {
		return
	}

	for _, tag := range r.tags {
		names = append(names, r.entries[tag].names[1:]...)
	}
	slices.Sort(names)

	return
}
