package bintree

import (
	"fmt"
	"iter"
)

// Each visits the tree in order: left subtree, node, right subtree. Values
// are therefore visited in ascending order.
func (n *Node[T]) Each(visit Visitor[T]) *Node[T] {
	n.inOrder(func(cur *Node[T]) bool {
		return visit(cur.value, cur, n)
	})
	return n
}

// PreEach visits a node before its left subtree, then its right subtree.
func (n *Node[T]) PreEach(visit Visitor[T]) *Node[T] {
	n.preOrder(func(cur *Node[T]) bool {
		return visit(cur.value, cur, n)
	})
	return n
}

// PostEach visits both subtrees of a node, left first, before the node.
func (n *Node[T]) PostEach(visit Visitor[T]) *Node[T] {
	n.postOrder(func(cur *Node[T]) bool {
		return visit(cur.value, cur, n)
	})
	return n
}

// BFSEach visits the tree level by level, left to right within a level.
func (n *Node[T]) BFSEach(visit Visitor[T]) *Node[T] {
	n.breadthFirst(func(cur *Node[T]) bool {
		return visit(cur.value, cur, n)
	})
	return n
}

// BFSEachWithLevel is BFSEach that also passes the level of each node,
// starting with 1 for n.
func (n *Node[T]) BFSEachWithLevel(visit LevelVisitor[T]) *Node[T] {
	n.breadthFirstWithLevel(func(cur *Node[T], level int) bool {
		return visit(cur.value, cur, n, level)
	})
	return n
}

// All returns the values of the tree in ascending order.
func (n *Node[T]) All() iter.Seq[T] {
	return n.Values(InOrder)
}

// Values returns the values of the tree in the given order. The sequence
// walks the tree from n again each time it is ranged over.
func (n *Node[T]) Values(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		n.walk(order, func(cur *Node[T]) bool {
			return yield(cur.value)
		})
	}
}

// Nodes is Values yielding the nodes themselves.
func (n *Node[T]) Nodes(order Order) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		n.walk(order, yield)
	}
}

// LevelNodes yields every node breadth first along with its level.
func (n *Node[T]) LevelNodes() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		n.breadthFirstWithLevel(func(cur *Node[T], level int) bool {
			return yield(level, cur)
		})
	}
}

func (n *Node[T]) walk(order Order, callback func(*Node[T]) bool) traverseAction {
	switch order {
	case InOrder:
		return n.inOrder(callback)
	case PreOrder:
		return n.preOrder(callback)
	case PostOrder:
		return n.postOrder(callback)
	case BreadthFirst:
		return n.breadthFirst(callback)
	}
	panic(fmt.Sprintf("bintree: unknown traversal %v", order))
}

func (n *Node[T]) inOrder(callback func(*Node[T]) bool) traverseAction {
	if !n.HasValue() {
		return traverseContinue
	}

	var stack []*Node[T]
	cur := n
	for len(stack) > 0 || cur != nil {
		if cur != nil {
			stack = append(stack, cur)
			cur = cur.left
			continue
		}

		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !callback(cur) {
			return traverseStop
		}
		cur = cur.right
	}
	return traverseContinue
}

func (n *Node[T]) preOrder(callback func(*Node[T]) bool) traverseAction {
	if !n.HasValue() {
		return traverseContinue
	}

	stack := []*Node[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !callback(cur) {
			return traverseStop
		}

		// right goes under left so the left subtree pops first
		children := cur.Children()
		for _, idx := range []int{rightIdx, leftIdx} {
			if child := children[idx]; child != nil {
				stack = append(stack, child)
			}
		}
	}
	return traverseContinue
}

func (n *Node[T]) postOrder(callback func(*Node[T]) bool) traverseAction {
	if !n.HasValue() {
		return traverseContinue
	}

	var stack []*Node[T]
	var prev *Node[T]
	cur := n
	for len(stack) > 0 || cur != nil {
		if cur != nil {
			stack = append(stack, cur)
			cur = cur.left
			continue
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != prev {
			cur = top.right
			continue
		}

		// right subtree is absent or done
		if !callback(top) {
			return traverseStop
		}
		stack = stack[:len(stack)-1]
		prev = top
	}
	return traverseContinue
}

func (n *Node[T]) breadthFirst(callback func(*Node[T]) bool) traverseAction {
	if !n.HasValue() {
		return traverseContinue
	}

	queue := []*Node[T]{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue[0] = nil
		queue = queue[1:]
		if !callback(cur) {
			return traverseStop
		}

		for _, child := range cur.Children() {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}
	return traverseContinue
}

func (n *Node[T]) breadthFirstWithLevel(callback func(*Node[T], int) bool) traverseAction {
	depth := 0
	// nodes left to visit in the current level and queued for the next one
	currLevelCount := 1
	nextLevelCount := 0

	return n.breadthFirst(func(cur *Node[T]) bool {
		nextLevelCount += cur.ChildCount()
		currLevelCount--

		if !callback(cur, depth+rootLevel) {
			return false
		}

		if currLevelCount == 0 {
			depth++
			currLevelCount = nextLevelCount
			nextLevelCount = 0
		}
		return true
	})
}

// Iterator returns a pull iterator over the nodes of the tree in ascending
// order of their values.
func (n *Node[T]) Iterator() Iterator[T] {
	it := &iterator[T]{}
	if n.HasValue() {
		it.cur = n
	}
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && (it.cur != nil || len(it.stack) > 0)
}

func (it *iterator[T]) Next() (*Node[T], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}

	for it.cur != nil {
		it.stack = append(it.stack, it.cur)
		it.cur = it.cur.left
	}

	next := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.cur = next.right
	return next, nil
}
