// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/hilite/token"
)

type (
	// tracer observes a scan.
	tracer interface {
		match(state string, rule *compiledRule, m *Match)
		transition(t Transition, before, after []string)
		token(tok token.Token)
		fallback(state, text string)
	}

	logTracer struct {
		logger logrus.FieldLogger
	}
)

// Debug wraps a Lexer so every match, transition & token of its scans is logged at debug
// level; the base Lexer is left untouched.
func Debug(base *Lexer) *Lexer {
	l := *base
	l.cfg.Debug = true
	l.options = base.options.Merge(nil)
	l.trace = &logTracer{logger: base.cfg.Logger.WithField("tag", base.def.tag)}

	return &l
}

// IsDebug reports whether the Lexer traces its scans.
func (l *Lexer) IsDebug() bool { return l.trace != nil }

func (t *logTracer) match(state string, rule *compiledRule, m *Match) {
	t.logger.WithFields(logrus.Fields{"state": state, "origin": rule.origin}).
		Debugf("matched %q with %q", m.Text(), rule.Pattern)
}

func (t *logTracer) transition(tr Transition, before, after []string) {
	t.logger.Debugf("%v: %v -> %v", tr, before, after)
}

func (t *logTracer) token(tok token.Token) {
	t.logger.WithField("short", tok.Kind.Short()).Debugf("token %v", tok)
}

func (t *logTracer) fallback(state, text string) {
	t.logger.WithField("state", state).Debugf("no rule matched %q", text)
}
