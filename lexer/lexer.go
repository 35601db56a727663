// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"gitlab.com/fisherprime/hilite/token"
	"gitlab.com/fisherprime/hilite/types"
)

type (
	// Lexer binds a Definition to a Config & lexer options; it is safe for concurrent use, each
	// Lex call owns its scan state.
	Lexer struct {
		def     *Definition
		cfg     Config
		options types.Options

		trace tracer
	}

	// Iterator lazily produces the tokens of one scan.
	Iterator struct {
		lexer *Lexer
		src   *source
		pos   int

		ctx *ScanContext

		// zeroWidth counts the zero-length matches accepted at pos.
		zeroWidth int

		queue []token.Token
		head  int
	}

	// ScanContext is the mutable per-scan record handed to every Callback.
	ScanContext struct {
		it       *Iterator
		stack    *StateStack
		counters map[string]int

		// pending collects the tokens emitted by the running Callback.
		pending []token.Token
	}
)

// New creates a Lexer for a Definition.
//
// The "debug" lexer option wraps the Lexer with Debug.
func New(def *Definition, opts ...Option) *Lexer {
	l := &Lexer{
		def:     def,
		cfg:     *DefaultConfig(),
		options: def.Options(),
	}

	for _, opt := range opts {
		opt(l)
	}
	l.cfg.Validate()

	if debug, err := l.options.GetBool(debugOption); err != nil {
		l.cfg.Logger.WithField("tag", def.Tag()).Warnf("lexer option: %v", err)
	} else if debug || l.cfg.Debug {
		return Debug(l)
	}

	return l
}

// Lex scans source with a Definition using the default Config.
func Lex(def *Definition, text string) *Iterator { return New(def).Lex(text) }

// Definition retrieves the Lexer's Definition.
func (l *Lexer) Definition() *Definition { return l.def }

// Config retrieves a copy of the Lexer's Config.
func (l *Lexer) Config() Config { return l.cfg }

// Options retrieves a copy of the Lexer's options.
func (l *Lexer) Options() types.Options { return l.options.Merge(nil) }

// Lex starts a lazy scan of source.
func (l *Lexer) Lex(text string) *Iterator {
	it := &Iterator{lexer: l, src: newSource(text)}
	it.ctx = &ScanContext{
		it:       it,
		stack:    newStateStack(RootState),
		counters: make(map[string]int),
	}

	return it
}

// Tokenize materializes a whole scan.
func (l *Lexer) Tokenize(text string) []token.Token { return l.Lex(text).Tokens() }

// Next produces the next token; ok is false once the source is exhausted.
func (it *Iterator) Next() (tok token.Token, ok bool) {
	for it.head == len(it.queue) {
		if it.pos >= len(it.src.runes) {
			return
		}
		it.queue, it.head = it.queue[:0], 0
		it.step()
	}

	tok, ok = it.queue[it.head], true
	it.head++

	return
}

// Tokens drains the remaining tokens.
func (it *Iterator) Tokens() (tokens []token.Token) {
	tokens = make([]token.Token, 0)
	for tok, ok := it.Next(); ok; tok, ok = it.Next() {
		tokens = append(tokens, tok)
	}

	return
}

// Stack retrieves a copy of the current StateStack frames.
func (it *Iterator) Stack() []string { return it.ctx.stack.Frames() }

// step tries the active state's rules at pos, first match wins; without a usable match a
// single rune is emitted as an Error token.
func (it *Iterator) step() {
	l := it.lexer
	s := l.def.states[it.ctx.stack.Top()]

	for _, rule := range s.rules {
		m, err := rule.re.FindRunesMatchStartingAt(it.src.runes, it.pos)
		if err != nil {
			l.cfg.Logger.WithFields(logrus.Fields{"tag": l.def.tag, "state": s.name}).
				Warnf("pattern %q: %v", rule.Pattern, err)
			continue
		}
		if m == nil || m.Index != it.pos {
			continue
		}

		match := &Match{m: m, src: it.src}
		if m.Length == 0 {
			if it.zeroWidthStep(s.name, rule, match) {
				return
			}
			continue
		}

		if l.trace != nil {
			l.trace.match(s.name, rule, match)
		}
		it.apply(rule, match)
		it.pos += m.Length
		it.zeroWidth = 0

		return
	}

	it.emit(token.Token{Kind: token.Error, Value: it.src.slice(it.pos, it.pos+1)})
	if l.trace != nil {
		l.trace.fallback(s.name, it.src.slice(it.pos, it.pos+1))
	}
	it.pos++
	it.zeroWidth = 0
}

// zeroWidthStep accepts a zero-length match only when it changes the StateStack, at most
// ZeroWidthLimit times per position; a rejected match leaves the counters untouched.
func (it *Iterator) zeroWidthStep(name string, rule *compiledRule, match *Match) bool {
	if it.zeroWidth >= it.lexer.cfg.ZeroWidthLimit {
		return false
	}

	before, counters := it.ctx.stack.Frames(), maps.Clone(it.ctx.counters)
	if rule.Callback != nil {
		it.ctx.pending = it.ctx.pending[:0]
		rule.Callback(it.ctx, match)
		it.ctx.pending = it.ctx.pending[:0]
	}
	it.ctx.transition(rule.Next)

	if it.ctx.stack.equal(before) {
		it.ctx.counters = counters
		return false
	}
	it.zeroWidth++

	if it.lexer.trace != nil {
		it.lexer.trace.match(name, rule, match)
	}

	return true
}

// apply runs a rule's action & Transition.
func (it *Iterator) apply(rule *compiledRule, match *Match) {
	text := match.Text()

	switch {
	case rule.Callback != nil:
		it.ctx.pending = it.ctx.pending[:0]
		rule.Callback(it.ctx, match)
		it.flush(text, it.ctx.pending)
	case len(rule.Groups) > 0:
		tokens := make([]token.Token, 0, len(rule.Groups))
		for index, kind := range rule.Groups {
			tokens = append(tokens, token.Token{Kind: kind, Value: match.Group(index + 1)})
		}
		it.flush(text, tokens)
	default:
		it.emit(token.Token{Kind: rule.Kind, Value: text})
	}

	it.ctx.transition(rule.Next)
}

// flush queues tokens that reproduce text exactly; otherwise text becomes one Error token.
func (it *Iterator) flush(text string, tokens []token.Token) {
	if token.Concat(tokens) != text {
		it.lexer.cfg.Logger.WithFields(logrus.Fields{"tag": it.lexer.def.tag, "state": it.ctx.stack.Top()}).
			Warnf("emitted tokens do not cover match %q", text)
		it.emit(token.Token{Kind: token.Error, Value: text})

		return
	}

	for _, tok := range tokens {
		it.emit(tok)
	}
}

func (it *Iterator) emit(tok token.Token) {
	if tok.Value == "" {
		return
	}
	if it.lexer.trace != nil {
		it.lexer.trace.token(tok)
	}
	it.queue = append(it.queue, tok)
}

// Emit queues a token for the running Callback.
func (c *ScanContext) Emit(kind token.Kind, text string) {
	c.pending = append(c.pending, token.Token{Kind: kind, Value: text})
}

// Delegate lexes text with another Definition, queueing its tokens in place.
func (c *ScanContext) Delegate(def *Definition, text string) {
	l := c.it.lexer
	sub := &Lexer{def: def, cfg: l.cfg, options: def.Options().Merge(l.options), trace: l.trace}

	c.pending = append(c.pending, sub.Tokenize(text)...)
}

// Push a state onto the StateStack; unknown states are ignored.
func (c *ScanContext) Push(name string) { c.transition(Push(name)) }

// Pop up to n states, never the root frame.
func (c *ScanContext) Pop(n int) { c.transition(Pop(n)) }

// Goto replaces the active state; unknown states are ignored.
func (c *ScanContext) Goto(name string) { c.transition(Goto(name)) }

// State retrieves the active state.
func (c *ScanContext) State() string { return c.stack.Top() }

// Depth retrieves the StateStack depth.
func (c *ScanContext) Depth() int { return c.stack.Len() }

// Counter retrieves a named counter, 0 when unset.
func (c *ScanContext) Counter(name string) int { return c.counters[name] }

// SetCounter assigns a named counter.
func (c *ScanContext) SetCounter(name string, val int) { c.counters[name] = val }

// Add adjusts a named counter, returning the new value.
func (c *ScanContext) Add(name string, delta int) int {
	c.counters[name] += delta
	return c.counters[name]
}

// Option retrieves a lexer option.
func (c *ScanContext) Option(key string) (val string, ok bool) { return c.it.lexer.options.Get(key) }

// Logger retrieves the Lexer's logger.
func (c *ScanContext) Logger() logrus.FieldLogger { return c.it.lexer.cfg.Logger }

func (c *ScanContext) transition(t Transition) {
	l := c.it.lexer
	before := c.stack.Frames()

	switch t.Op {
	case OpNone:
		return
	case OpPush, OpGoto:
		if !l.def.HasState(t.State) {
			l.cfg.Logger.WithField("tag", l.def.tag).Warnf("ignoring %v: %v", t, ErrUnknownState)
			return
		}

		if t.Op == OpPush {
			c.stack.Push(t.State)
		} else {
			c.stack.Goto(t.State)
		}
	case OpPop:
		if popped := c.stack.Pop(t.Depth); popped < t.Depth {
			l.cfg.Logger.WithField("tag", l.def.tag).Debugf("%v stopped at %s after %d frame(s)", t, RootState, popped)
		}
	}

	if l.trace != nil {
		l.trace.transition(t, before, c.stack.Frames())
	}
}
