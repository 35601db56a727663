// SPDX-License-Identifier: MIT
package token

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Constraint is a wrapper interface containing comparable & constraints.Ordered.
type Constraint interface {
	comparable
	constraints.Ordered
}

type (
	// tree defines an n-array tree holding the Kind taxonomy.
	//
	// Synchronization is unnecessary, the type is designed for single write multiple read.
	tree[T Constraint] struct {
		// parent contains a reference to the upper tree.
		parent *tree[T]

		// value contains the node's data.
		value T

		// children holds references to nodes at a lower level.
		children children[T]

		// locateCache holds references to every node added below the root; nil elsewhere.
		locateCache children[T]
	}

	children[T Constraint] map[T]*tree[T]

	// list is a type wrapper for []*tree.
	list[T Constraint] []*tree[T]

	// traverseComm communicates nodes between a walk & its caller.
	traverseComm[T Constraint] struct {
		node     *tree[T]
		newPeers bool
	}
)

const traverseBufferSize = 10

// Errors encountered when handling a tree.
var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyChild = errors.New("is a child of")
)

// newTree instantiates a root tree.
func newTree[T Constraint](value T) *tree[T] {
	t := &tree[T]{value: value, children: make(children[T]), locateCache: make(children[T])}
	t.locateCache[value] = t

	return t
}

func (t *tree[T]) root() *tree[T] {
	node := t
	for node.parent != nil {
		node = node.parent
	}

	return node
}

// addChild to a tree, throws an error on an existing child anywhere in the tree.
func (t *tree[T]) addChild(value T) (child *tree[T], err error) {
	root := t.root()
	if _, ok := root.locateCache[value]; ok {
		err = fmt.Errorf("(%v) %w (%v)", value, ErrAlreadyChild, t.value)
		return
	}

	child = &tree[T]{parent: t, value: value, children: make(children[T])}
	t.children[value] = child
	root.locateCache[value] = child

	return
}

// locate searches for a value & returns its tree.
func (t *tree[T]) locate(value T) (node *tree[T], err error) {
	node, ok := t.root().locateCache[value]
	if !ok {
		err = fmt.Errorf("(%v) %w", value, ErrNotFound)
	}

	return
}

// sortedChildren lists the immediate children ordered by value.
func (t *tree[T]) sortedChildren() (sorted list[T]) {
	keys := maps.Keys(t.children)
	slices.Sort(keys)

	sorted = make(list[T], len(keys))
	for index, key := range keys {
		sorted[index] = t.children[key]
	}

	return
}

// walk performs breadth-first traversal on a tree, pushing its nodes to its channel argument.
//
// A context.Context is used to terminate the walk operation.
func (t *tree[T]) walk(ctx context.Context, traverseChan chan traverseComm[T]) {
	defer close(traverseChan)

	if t == nil {
		return
	}

	queue := list[T]{t}

	var front *tree[T]
	for len(queue) > 0 {
		queueLen := len(queue)

		newPeers := true
		for ; queueLen > 0; queueLen-- {
			front, queue = queue[0], queue[1:]

			select {
			case <-ctx.Done():
				return
			case traverseChan <- traverseComm[T]{node: front, newPeers: newPeers}:
			}
			newPeers = false

			queue = append(queue, front.sortedChildren()...)
		}
	}
}

// values collects the values reached by a walk.
func (t *tree[T]) values(ctx context.Context, leavesOnly bool) (values []T) {
	traverseChan := make(chan traverseComm[T], traverseBufferSize)

	walkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go t.walk(walkCtx, traverseChan)

	for resl := range traverseChan {
		if leavesOnly && len(resl.node.children) > 0 {
			continue
		}
		values = append(values, resl.node.value)
	}

	return
}
