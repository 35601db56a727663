// SPDX-License-Identifier: MIT
package lexer

import (
	"strings"

	"golang.org/x/exp/slices"
)

// StateStack is a per-scan stack of state names; the root frame is never removed.
//
// A state may appear more than once, e.g. for nested comments.
type StateStack struct {
	frames []string
}

func newStateStack(root string) *StateStack {
	return &StateStack{frames: []string{root}}
}

// Top retrieves the active state.
func (s *StateStack) Top() string { return s.frames[len(s.frames)-1] }

// Len retrieves the stack depth, at least 1.
func (s *StateStack) Len() int { return len(s.frames) }

// Frames retrieves a copy of the stack, bottom first.
func (s *StateStack) Frames() []string { return slices.Clone(s.frames) }

// Push adds a frame.
func (s *StateStack) Push(name string) { s.frames = append(s.frames, name) }

// Pop removes up to n frames, stopping at the root frame; returns the number removed.
func (s *StateStack) Pop(n int) (popped int) {
	for ; popped < n && len(s.frames) > 1; popped++ {
		s.frames = s.frames[:len(s.frames)-1]
	}

	return
}

// Goto replaces the top frame; at the root frame the target is pushed instead.
func (s *StateStack) Goto(name string) {
	if len(s.frames) == 1 {
		s.Push(name)
		return
	}
	s.frames[len(s.frames)-1] = name
}

// String implements fmt.Stringer.
func (s *StateStack) String() string { return "[" + strings.Join(s.frames, " ") + "]" }

func (s *StateStack) equal(frames []string) bool { return slices.Equal(s.frames, frames) }
