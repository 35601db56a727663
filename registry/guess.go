// SPDX-License-Identifier: MIT
package registry

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/hilite/lexer"
)

type (
	// Hints are the partial signals a guess is made from; any subset may be empty.
	Hints struct {
		Filename string
		Mimetype string
		Source   string

		// Tag names a Definition explicitly, by tag or alias.
		Tag string
	}

	// Candidate is a scored Definition.
	Candidate struct {
		Definition *lexer.Definition
		Weight     float64

		// Content is the analyzer's share of Weight.
		Content float64
	}

	// Weights are the additive contributions of each matching hint.
	Weights struct {
		// FilenameExact scores a filename pattern naming the exact basename, e.g. "Dockerfile".
		FilenameExact float64
		// FilenameGlob scores any other matching filename glob, e.g. "*.json".
		FilenameGlob float64
		Mimetype     float64
		// Content scales an analyzer's [0,1] confidence.
		Content  float64
		Modeline float64
	}
)

// Default guessing weights.
const (
	DefaultFilenameExactWeight = 3
	DefaultFilenameGlobWeight  = 2
	DefaultMimetypeWeight      = 2
	DefaultContentWeight       = 1
	DefaultModelineWeight      = 4

	// ExplicitWeight is the confidence of a Definition named by Hints.Tag.
	ExplicitWeight = 1.0
)

// DefaultWeights configures the guessing Weights.
func DefaultWeights() Weights {
	return Weights{
		FilenameExact: DefaultFilenameExactWeight,
		FilenameGlob:  DefaultFilenameGlobWeight,
		Mimetype:      DefaultMimetypeWeight,
		Content:       DefaultContentWeight,
		Modeline:      DefaultModelineWeight,
	}
}

// Guess ranks the Definitions matching hints, most likely first.
//
// A Tag hint resolving to a Definition short-circuits the ranking. Definitions no hint matches are
// left out, so no hints yield no candidates.
func (r *Registry) Guess(hints Hints) (candidates []Candidate) {
	candidates = make([]Candidate, 0)

	if hints.Tag != "" {
		if def, ok := r.Find(hints.Tag); ok {
			return append(candidates, Candidate{Definition: def, Weight: ExplicitWeight})
		}
		r.logger.WithField("tag", hints.Tag).Debug("explicit lexer not found, guessing")
	}

	mimetype := ""
	if hints.Mimetype != "" {
		mimetype = normalizeMimetype(hints.Mimetype)
	}
	mode := modeline(hints.Source)

	for _, tag := range r.tags {
		e := r.entries[tag]
		c := Candidate{Definition: e.def}

		c.Weight += filenameWeight(e.globs, hints.Filename, r.weights)
		if mimetype != "" && e.mimetypes.Contains(mimetype) {
			c.Weight += r.weights.Mimetype
		}
		if mode != "" && e.names.Contains(mode) {
			c.Weight += r.weights.Modeline
		}
		if hints.Source != "" && e.def.HasAnalyzer() {
			c.Content = r.analyze(e.def, hints.Source) * r.weights.Content
			c.Weight += c.Content
		}

		if c.Weight > 0 {
			candidates = append(candidates, c)
		}
	}
	slices.SortFunc(candidates, compareCandidates)

	if len(candidates) > 0 {
		r.logger.WithFields(logrus.Fields{
			"filename": hints.Filename,
			"mimetype": hints.Mimetype,
			"best":     candidates[0].Definition.Tag(),
		}).Debugf("guessed %d candidates", len(candidates))
	}

	return
}

// Guesses lists the Definitions matching hints, most likely first.
func (r *Registry) Guesses(hints Hints) (defs []*lexer.Definition) {
	candidates := r.Guess(hints)

	defs = make([]*lexer.Definition, len(candidates))
	for index, c := range candidates {
		defs[index] = c.Definition
	}

	return
}

// Best retrieves the most likely Definition for hints.
func (r *Registry) Best(hints Hints) (def *lexer.Definition, ok bool) {
	if candidates := r.Guess(hints); len(candidates) > 0 {
		return candidates[0].Definition, true
	}

	return
}

// analyze runs a Definition's analyzer; a panicking analyzer scores 0.
func (r *Registry) analyze(def *lexer.Definition, sample string) (score float64) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.WithField("tag", def.Tag()).Warnf("analyzer panicked: %v", rec)
			score = 0
		}
	}()

	return def.Analyze(sample)
}

// compareCandidates orders by weight, then content contribution, priority & tag.
func compareCandidates(a, b Candidate) int {
	switch {
	case a.Weight != b.Weight:
		return descending(a.Weight, b.Weight)
	case (a.Content > 0) != (b.Content > 0):
		if a.Content > 0 {
			return -1
		}
		return 1
	case a.Definition.Priority() != b.Definition.Priority():
		return descending(a.Definition.Priority(), b.Definition.Priority())
	}

	return strings.Compare(a.Definition.Tag(), b.Definition.Tag())
}

func descending(a, b float64) int {
	if a > b {
		return -1
	}

	return 1
}
