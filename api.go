package bintree

import (
	"golang.org/x/exp/constraints"
)

// Iterator walks the nodes of a tree in ascending order.
type Iterator[T any] interface {
	HasNext() bool
	Next() (*Node[T], error)
}

// Visitor is called once per visited node with the node value, the node
// and the node the traversal started from. Returning false stops the walk.
type Visitor[T any] func(value T, n *Node[T], root *Node[T]) bool

// LevelVisitor is a Visitor that also receives the 1-based level of n.
type LevelVisitor[T any] func(value T, n *Node[T], root *Node[T], level int) bool

// New returns a tree ordered by the < and == operators of T. The first
// initial value, if any, becomes the root value; otherwise the tree is
// empty until the first Insert.
func New[T constraints.Ordered](initial ...T) *Node[T] {
	return newNode(&ordering[T]{
		cmp: compareOrdered[T],
		eq:  func(a, b T) bool { return a == b },
	}, initial)
}

// NewFunc returns a tree ordered by cmp, which must return a negative
// number, zero or a positive number when a is less than, equal to or
// greater than b.
func NewFunc[T any](cmp func(a, b T) int, initial ...T) *Node[T] {
	return newNode(&ordering[T]{
		cmp: cmp,
		eq:  func(a, b T) bool { return cmp(a, b) == 0 },
	}, initial)
}

// NewAny returns a dynamically typed tree ordered by CompareAny.
func NewAny(initial ...any) *Node[any] {
	return newNode(&ordering[any]{
		cmp: CompareAny,
		eq:  EqualAny,
	}, initial)
}
