package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// RBTree is a binary search tree with no repeated values. It maintains
// balance through local recoloring and rotations on insertion, following the
// red-black rules: the root is black, no red node has a red child, and every
// path from a node down to an absent child passes the same number of black
// nodes. Each node additionally carries the size of its subtree, which is
// what RankOf and RankK descend by.
// T is the type of values it will hold, S is the type of the variables used
// for storing the sizes of subtrees; see Tree for the constraints on S.
// The height D of the tree is at most 2*log2(n+1), so all O(D) methods are
// O(log n).
// The zero value is an empty tree ready for use.
type RBTree[T cmp.Ordered, S constraints.Unsigned] struct {
	root nodePtr[T, S]
}

// MakeRBTree returns an empty RBTree.
func MakeRBTree[T cmp.Ordered, S constraints.Unsigned]() *RBTree[T, S] {
	return new(RBTree[T, S])
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) Size() S {
	return sizeOf(u.root)
}

// Insert [Tree.Insert].
// The descent mutates nothing, so a duplicate leaves the tree untouched. On
// success the new node is linked in black with size 1, every ancestor's size
// is bumped through the parent links, and fixInsert restores the coloring.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Insert(v T) bool {
	var prev nodePtr[T, S]
	for cur := u.root; cur != nil; {
		if prev = cur; v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return false
		}
	}
	n := &node[T, S]{v: v, p: prev, sz: 1}
	if prev == nil {
		u.root = n
	} else if v < prev.v {
		prev.l = n
	} else {
		prev.r = n
	}
	for a := prev; a != nil; a = a.p {
		a.sz++
	}
	fixInsert(&u.root, n)
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Get returns the pointer to the element that's equal to v in the tree, nil
// if v isn't present. See Tree.RankK for the restriction on the pointee.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Get(v T) *T {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Predecessor(v T) (T, bool) {
	var p nodePtr[T, S]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) Successor(v T) (T, bool) {
	var p nodePtr[T, S]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// RankOf [Tree.RankOf]
// Keys smaller than v are counted while descending: moving right past a node
// skips that node and its whole left subtree.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) RankOf(v T) (S, bool) {
	var ra S
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			ra += sizeOf(cur.l) + 1
			cur = cur.r
		} else {
			return ra + sizeOf(cur.l), true
		}
	}
	return ra, false
}

// RankK [Tree.RankK]
// k is reduced to a rank relative to the current subtree while descending.
// Time: O(D); Space: O(1)
func (u *RBTree[T, S]) RankK(k S) *T {
	for cur := u.root; cur != nil; {
		if ls := sizeOf(cur.l); k < ls {
			cur = cur.l
		} else if k > ls {
			k -= ls + 1
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// InOrder [Tree.InOrder]
// Uses the parent links to find successors, so iteration needs no stack and
// doesn't modify the tree.
// Time: f(): amortized O(1) at each call to the returned function; Space: O(1)
func (u *RBTree[T, S]) InOrder() func() (T, bool) {
	cur := u.root
	if cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
	}
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		if cur.r != nil {
			for cur = cur.r; cur.l != nil; {
				cur = cur.l
			}
		} else {
			p := cur.p
			for p != nil && cur == p.r {
				cur, p = p, p.p
			}
			cur = p
		}
		return
	}
}

// Clear the tree. Nodes carry no resources besides memory, so dropping the
// root releases everything to the collector at once.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) Clear() {
	u.root = nil
}

// corrupt checks the subtree rooting at cur recursively: ordering and parent
// links between cur and its immediate children, the size counter, and the
// red-black coloring. It returns the number of black nodes on every path from
// cur to an absent child, which must agree between the two subtrees.
func (u *RBTree[T, S]) corrupt(cur nodePtr[T, S]) (uint, bool) {
	if cur == nil {
		return 0, false
	}
	if cur.l != nil && (cur.l.p != cur || !(cur.l.v < cur.v) || cur.red && cur.l.red) {
		return 0, true
	}
	if cur.r != nil && (cur.r.p != cur || !(cur.v < cur.r.v) || cur.red && cur.r.red) {
		return 0, true
	}
	if cur.sz != sizeOf(cur.l)+sizeOf(cur.r)+1 {
		return 0, true
	}
	lb, bad := u.corrupt(cur.l)
	if bad {
		return 0, true
	}
	rb, bad := u.corrupt(cur.r)
	if bad || lb != rb {
		return 0, true
	}
	if !cur.red {
		lb++
	}
	return lb, false
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n); Space: O(D)
func (u *RBTree[T, S]) Corrupt() bool {
	if u.root != nil && (u.root.red || u.root.p != nil) {
		return true
	}
	_, bad := u.corrupt(u.root)
	return bad
}

func (u *RBTree[T, S]) minDepth(c nodePtr[T, S], cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth of any leaf, in edges from the root. Recursive.
func (u *RBTree[T, S]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u *RBTree[T, S]) maxDepth(c nodePtr[T, S], cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth of any leaf, in edges from the root. Recursive.
func (u *RBTree[T, S]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}
