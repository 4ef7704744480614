package bintree

import (
	"errors"
	"fmt"
)

const (
	InOrder Order = iota
	PreOrder
	PostOrder
	BreadthFirst
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// root level for breadth first walks
	rootLevel = 1

	// children slots of a node
	leftIdx  = 0
	rightIdx = 1
)

var (
	ErrNoMoreNodes       = errors.New("There are no more nodes in the tree")
	ErrInvalidComparison = errors.New("invalid comparison")
)

type (
	// Node is a sorted binary tree. Every node is the root of its own
	// subtree, so all operations can start from any node.
	Node[T any] struct {
		value T
		// false until the first insert into an empty node
		set bool

		left  *Node[T]
		right *Node[T]

		// shared by every node of one tree
		ord *ordering[T]
	}

	ordering[T any] struct {
		// three way comparison driving insert and search
		cmp func(a, b T) int
		// equality used by membership tests
		eq func(a, b T) bool
	}

	// Order selects one of the four traversal strategies.
	Order int

	traverseAction int

	// InvalidComparisonError reports two values that have no ordering
	// between them.
	InvalidComparisonError struct {
		A, B any
	}

	iterator[T any] struct {
		// next subtree whose left spine is not stacked yet
		cur *Node[T]
		// pending ancestors, top is the next in-order node
		stack []*Node[T]
	}
)

func newNode[T any](ord *ordering[T], initial []T) *Node[T] {
	n := &Node[T]{ord: ord}
	if len(initial) > 0 {
		n.value = initial[0]
		n.set = true
	}
	return n
}

func newLeaf[T any](ord *ordering[T], value T) *Node[T] {
	return &Node[T]{
		value: value,
		set:   true,
		ord:   ord,
	}
}

func (o Order) String() string {
	names := []string{"InOrder", "PreOrder", "PostOrder", "BreadthFirst"}
	if o < 0 || int(o) >= len(names) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return names[o]
}

func (e *InvalidComparisonError) Error() string {
	return fmt.Sprintf("comparison of %T with %T failed", e.A, e.B)
}

func (e *InvalidComparisonError) Is(target error) bool {
	return target == ErrInvalidComparison
}
