// SPDX-License-Identifier: MIT
package lexer

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/hilite/types"
)

type (
	// Option defines the Lexer functional option type.
	Option func(*Lexer)

	// BuildOption defines the Definition build functional option type.
	BuildOption func(*builder)
)

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.cfg.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.cfg.Debug = debug } }

// WithZeroWidthLimit configures the zero-width match limit.
func WithZeroWidthLimit(limit int) Option {
	return func(l *Lexer) { l.cfg.ZeroWidthLimit = limit }
}

// WithConfig replaces the Lexer's Config.
func WithConfig(cfg Config) Option { return func(l *Lexer) { l.cfg = cfg } }

// WithOptions configures lexer options, merged over the Definition's defaults.
func WithOptions(opts types.Options) Option {
	return func(l *Lexer) { l.options = l.options.Merge(opts) }
}

// WithBuildLogger configures the logger used while building a Definition.
func WithBuildLogger(logger logrus.FieldLogger) BuildOption {
	return func(b *builder) { b.logger = logger }
}

// WithBuildDebug dumps the partial state table on build errors.
func WithBuildDebug(debug bool) BuildOption { return func(b *builder) { b.debug = debug } }

// WithRegexOptions replaces the regexp2 options patterns are compiled with.
//
// Defaults to regexp2.Multiline.
func WithRegexOptions(options regexp2.RegexOptions) BuildOption {
	return func(b *builder) { b.regexOptions = options }
}

// WithMatchTimeout bounds a single pattern evaluation; a timed out pattern counts as a non-match.
func WithMatchTimeout(timeout time.Duration) BuildOption {
	return func(b *builder) { b.matchTimeout = timeout }
}
