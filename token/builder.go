// SPDX-License-Identifier: MIT
package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Builder defines an interface for entities that can be read into a tree.
	Builder[T Constraint] interface {
		// Value obtains the value stored by the Builder.
		Value() T
		// Parent obtains the parent stored by the Builder; the zero value marks the root.
		Parent() T
	}

	// buildSource is a wrapper type for []Builder used to generate the tree.
	buildSource[T Constraint] struct {
		debug  bool
		logger logrus.FieldLogger

		list []Builder[T]
	}
)

// Tree building errors.
var (
	ErrBuildTaxonomy = errors.New("failed to build taxonomy")

	ErrMissingRootNode   = errors.New("missing root node")
	ErrMultipleRootNodes = errors.New("taxonomy has multiple root nodes")
	ErrEmptySource       = errors.New("empty taxonomy source")
	ErrLocateParents     = errors.New("unable to locate parent(s)")

	ErrPanicked = errors.New("recovery from panic")
)

func newBuildSource[T Constraint](list []Builder[T], logger logrus.FieldLogger, debug bool) *buildSource[T] {
	// Build from a copy, entries are cut as they are placed.
	src := make([]Builder[T], len(list))
	copy(src, list)

	return &buildSource[T]{list: src, logger: logger, debug: debug}
}

// Len retrieves the length of the buildSource.
func (b *buildSource[T]) Len() int { return len(b.list) }

// Cut a value at some index from the buildSource.
func (b *buildSource[T]) Cut(index int) {
	if index == 0 {
		b.list = b.list[1:]
		return
	}

	b.list = append(b.list[:index], b.list[index+1:]...)
}

// Build generates a tree from the buildSource; entries may appear in any order.
func (b *buildSource[T]) Build(ctx context.Context) (t *tree[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			if b.debug {
				b.logger.Debugf("current taxonomy: %s \nsource remnants: %s", spew.Sprint(t), spew.Sprint(b.list))
			}

			err = fmt.Errorf("%w: %v", ErrBuildTaxonomy, err)
		}
	}()

	if b.Len() < 1 {
		err = ErrEmptySource
		return
	}

	var rootValue T

	rootIndex := 0
	for index := range b.list {
		if b.list[index].Parent() != rootValue {
			continue
		}

		// Disallow additional root node(s).
		if t != nil {
			err = ErrMultipleRootNodes
			return
		}
		t, rootIndex = newTree(b.list[index].Value()), index
	}
	if t == nil {
		err = ErrMissingRootNode
		return
	}
	b.Cut(rootIndex)

	prevLen := b.Len() + 1
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		lenSrc := b.Len()
		if lenSrc < 1 {
			return
		}

		if lenSrc == prevLen {
			err = fmt.Errorf("%w for: %s", ErrLocateParents, spew.Sprint(b.list))
			return
		}
		prevLen = lenSrc

		for index := 0; index < lenSrc; index++ {
			entry := b.list[index]

			parent, locateErr := t.locate(entry.Parent())
			if locateErr != nil {
				// Parent not yet placed.
				continue
			}

			if _, err = parent.addChild(entry.Value()); err != nil {
				return
			}

			b.Cut(index)
			index--
			lenSrc--
		}
	}
}
