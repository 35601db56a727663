// SPDX-License-Identifier: MIT
package token

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type (
	// outlineLine is a node reached by a pre-order walk & its depth.
	outlineLine[T Constraint] struct {
		node  *tree[T]
		depth int
	}
)

// Outline writes the taxonomy depth-first, one Kind & its short name per line, indented two
// spaces per level.
func Outline(ctx context.Context, w io.Writer) (err error) {
	walkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lineChan := make(chan outlineLine[Kind], traverseBufferSize)
	go func() {
		tax.tree.preorder(walkCtx, 0, lineChan)
		close(lineChan)
	}()

	for line := range lineChan {
		k := line.node.value
		if _, err = fmt.Fprintf(w, "%s%s\t%s\n", strings.Repeat("  ", line.depth), k, k.Short()); err != nil {
			return
		}
	}

	return ctx.Err()
}

// preorder pushes a tree's nodes to lineChan parent first, siblings ordered by value.
func (t *tree[T]) preorder(ctx context.Context, depth int, lineChan chan outlineLine[T]) {
	if t == nil {
		return
	}

	select {
	case <-ctx.Done():
		return
	case lineChan <- outlineLine[T]{node: t, depth: depth}:
	}

	for _, child := range t.sortedChildren() {
		child.preorder(ctx, depth+1, lineChan)
	}
}
