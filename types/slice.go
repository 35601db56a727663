// SPDX-License-Identifier: MIT
package types

import (
	"golang.org/x/exp/slices"
)

type (
	// StringSlice is an ordered set of `string`s.
	StringSlice []string
)

// NewStringSlice creates a `StringSlice` holding the unique values in order.
func NewStringSlice(values ...string) (sl StringSlice) {
	sl = make(StringSlice, 0, len(values))
	sl.UniqueAppend(values...)

	return
}

// Locate for `StringSlice`.
func (sl *StringSlice) Locate(val string) (resl int) {
	resl = -1

	for index := range *sl {
		if (*sl)[index] == val {
			resl = index
			return
		}
	}

	return
}

// Contains reports whether val is in the `StringSlice`.
func (sl *StringSlice) Contains(val string) bool { return sl.Locate(val) > -1 }

// UniqueAppend to `StringSlice`.
func (sl *StringSlice) UniqueAppend(values ...string) {
	for index := range values {
		newValue := values[index]
		if sl.Locate(newValue) > -1 {
			continue
		}

		*sl = append(*sl, newValue)
	}
}

// Sort for `StringSlice`.
func (sl *StringSlice) Sort() { slices.Sort(*sl) }

// Clone returns an independent copy.
func (sl StringSlice) Clone() StringSlice { return slices.Clone(sl) }
