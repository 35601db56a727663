// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"

	"gitlab.com/fisherprime/hilite/token"
)

type (
	// TransitionOp identifies a StateStack operation.
	TransitionOp int

	// Transition is the StateStack change applied after a rule's action.
	Transition struct {
		Op    TransitionOp
		State string
		Depth int
	}

	// Callback handles a match, emitting tokens & transitions through the ScanContext.
	Callback func(ctx *ScanContext, m *Match)

	// Rule pairs an anchored pattern with an action & an optional Transition.
	//
	// Exactly one of Kind, Groups & Callback is set; Include instead splices another state's
	// rules in place.
	Rule struct {
		Pattern  string
		Kind     token.Kind
		Groups   []token.Kind
		Callback Callback
		Next     Transition

		Include string
	}

	// States maps state names to their ordered rules.
	States map[string][]Rule
)

// Transition operations.
const (
	OpNone TransitionOp = iota
	OpPush
	OpPop
	OpGoto
)

// Push a state onto the StateStack.
func Push(state string) Transition { return Transition{Op: OpPush, State: state} }

// Pop up to depth states, never the root frame.
func Pop(depth int) Transition { return Transition{Op: OpPop, Depth: depth} }

// Goto replaces the top of the StateStack.
func Goto(state string) Transition { return Transition{Op: OpGoto, State: state} }

// String implements fmt.Stringer.
func (t Transition) String() string {
	switch t.Op {
	case OpPush:
		return fmt.Sprintf("push(%s)", t.State)
	case OpPop:
		return fmt.Sprintf("pop(%d)", t.Depth)
	case OpGoto:
		return fmt.Sprintf("goto(%s)", t.State)
	default:
		return "none"
	}
}

// Emit creates a Rule emitting the whole match as kind.
func Emit(pattern string, kind token.Kind, next ...Transition) Rule {
	return Rule{Pattern: pattern, Kind: kind, Next: firstTransition(next)}
}

// ByGroups creates a Rule emitting one token per capture group.
func ByGroups(pattern string, kinds ...token.Kind) Rule {
	return Rule{Pattern: pattern, Groups: kinds}
}

// Using creates a Rule delegating the match to a Callback.
func Using(pattern string, cb Callback, next ...Transition) Rule {
	return Rule{Pattern: pattern, Callback: cb, Next: firstTransition(next)}
}

// Include splices the named state's rules in place.
func Include(state string) Rule { return Rule{Include: state} }

// Then returns a copy of the Rule with its Transition set.
func (r Rule) Then(next Transition) Rule {
	r.Next = next
	return r
}

func firstTransition(next []Transition) (t Transition) {
	if len(next) > 0 {
		t = next[0]
	}

	return
}
