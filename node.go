package bintree

// Value returns the value held by n and whether it has one. An empty tree
// has no value until its first Insert.
func (n *Node[T]) Value() (T, bool) {
	if n == nil || !n.set {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (n *Node[T]) HasValue() bool {
	return n != nil && n.set
}

// SetValue overwrites the value of n in place. It bypasses the ordering
// done by Insert, so the caller is responsible for keeping the tree sorted.
func (n *Node[T]) SetValue(v T) {
	n.value = v
	n.set = true
}

func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Children returns the left and right child of n, in that order. Missing
// children are nil.
func (n *Node[T]) Children() [2]*Node[T] {
	var children [2]*Node[T]
	if n == nil {
		return children
	}
	children[leftIdx] = n.left
	children[rightIdx] = n.right
	return children
}

// ChildCount returns the number of non-nil children of n.
func (n *Node[T]) ChildCount() int {
	count := 0
	for _, child := range n.Children() {
		if child != nil {
			count++
		}
	}
	return count
}

func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Insert places v in the subtree rooted at n. An empty node takes v as its
// own value. Otherwise v goes to the left subtree when it is less than the
// node value and to the right subtree when it is greater or equal, so equal
// values are kept rather than merged.
//
// Insert returns n itself. Chained calls all start at the receiver of the
// first call: n.Insert(a).Insert(b) inserts both a and b starting at n.
func (n *Node[T]) Insert(v T) *Node[T] {
	if !n.set {
		n.value = v
		n.set = true
		return n
	}

	cur := n
	for {
		slot := &cur.right
		if n.ord.cmp(v, cur.value) < 0 {
			slot = &cur.left
		}
		if *slot == nil {
			*slot = newLeaf(n.ord, v)
			return n
		}
		cur = *slot
	}
}

// TryInsert is Insert for values that may have no ordering against the
// values already in the tree. The *InvalidComparisonError that Insert would
// panic with is returned instead, and the tree is left unchanged.
func (n *Node[T]) TryInsert(v T) (_ *Node[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*InvalidComparisonError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	return n.Insert(v), nil
}

// Contains reports whether some node of the tree holds a value equal to v.
// It walks the whole tree in order rather than searching by comparison.
func (n *Node[T]) Contains(v T) bool {
	found := false
	n.Each(func(value T, _, _ *Node[T]) bool {
		if n.ord.eq(value, v) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Height returns the number of edges between n and its deepest leaf. A
// single node has height 0.
func (n *Node[T]) Height() int {
	maxLevel := rootLevel
	n.BFSEachWithLevel(func(_ T, _, _ *Node[T], level int) bool {
		maxLevel = level
		return true
	})
	return maxLevel - rootLevel
}

// Sorted returns the values of the tree in ascending order.
func (n *Node[T]) Sorted() []T {
	values := make([]T, 0)
	n.Each(func(value T, _, _ *Node[T]) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (n *Node[T]) Len() int {
	size := 0
	n.PreEach(func(T, *Node[T], *Node[T]) bool {
		size++
		return true
	})
	return size
}

func (n *Node[T]) Min() (T, bool) {
	cur := n
	for cur.HasValue() && cur.left != nil {
		cur = cur.left
	}
	return cur.Value()
}

func (n *Node[T]) Max() (T, bool) {
	cur := n
	for cur.HasValue() && cur.right != nil {
		cur = cur.right
	}
	return cur.Value()
}

// FindExact descends from n following the ordering and returns the first
// node whose value equals v, or nil. With repeated values this is the
// shallowest match on the search path, not necessarily the oldest one.
func (n *Node[T]) FindExact(v T) *Node[T] {
	cur := n
	for cur.HasValue() {
		if n.ord.eq(cur.value, v) {
			return cur
		}
		if n.ord.cmp(v, cur.value) < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// FindChildWithValue returns the direct child of n holding v, checking the
// left child first, or nil.
func (n *Node[T]) FindChildWithValue(v T) *Node[T] {
	for _, child := range n.Children() {
		if child.HasValue() && n.ord.eq(child.value, v) {
			return child
		}
	}
	return nil
}

// Levels groups the values of the tree by level, root being level 1.
// Values within a level are ordered left to right.
func (n *Node[T]) Levels() map[int][]T {
	levels := make(map[int][]T)
	n.BFSEachWithLevel(func(value T, _, _ *Node[T], level int) bool {
		levels[level] = append(levels[level], value)
		return true
	})
	return levels
}

// ParentOf returns the node under n whose left or right child is target,
// or nil when target is n itself or is not found.
//
// The search follows the ordering of target's value instead of visiting
// every node. A node whose value was changed with SetValue, so that it no
// longer sits where its value would route, is not found.
func (n *Node[T]) ParentOf(target *Node[T]) *Node[T] {
	if target == nil || target == n || !n.HasValue() || !target.set {
		return nil
	}

	parent := n
	for parent != nil && parent.left != target && parent.right != target {
		if n.ord.cmp(target.value, parent.value) < 0 {
			parent = parent.left
		} else {
			parent = parent.right
		}
	}
	return parent
}
