package Trees

import "golang.org/x/exp/constraints"

// A node in the RBTree and CRBTree.
// The zero value of red is black, which is also the color new nodes are
// created with; insertion fixup promotes them to red as needed. p is nil
// only for the root, and l and r are nil where a child is absent.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	p    nodePtr[T, S]
	sz   S
	red  bool
}

// Pointer to a node. nil represents an absent child, which counts as black
// and has size 0; use isRed and sizeOf instead of touching the fields.
type nodePtr[T any, S constraints.Unsigned] *node[T, S]

func isRed[T any, S constraints.Unsigned](n nodePtr[T, S]) bool {
	return n != nil && n.red
}

func sizeOf[T any, S constraints.Unsigned](n nodePtr[T, S]) S {
	if n == nil {
		return 0
	}
	return n.sz
}

// siblingOf returns the other child of n's parent, nil if n has no parent.
func siblingOf[T any, S constraints.Unsigned](n nodePtr[T, S]) nodePtr[T, S] {
	if p := n.p; p == nil {
		return nil
	} else if p.l == n {
		return p.r
	} else {
		return p.l
	}
}

// rotateUp performs the single rotation that raises n one level and lowers
// its parent, to n's side: a right rotation when n is a left child, the
// mirror otherwise. root is passed by reference because the old parent may
// have been the root. Size counters are restored bottom-up: the vacated
// parent is recomputed from its updated children, then n takes over the old
// subtree total. Panics with RotateRootError when n has no parent.
// Time: O(1); Space: O(1)
func rotateUp[T any, S constraints.Unsigned](root *nodePtr[T, S], n nodePtr[T, S]) {
	p := n.p
	if p == nil {
		panic(RotateRootError{})
	}
	var c nodePtr[T, S]
	if n == p.l {
		c = n.r
		n.r, p.l = p, c
	} else {
		c = n.l
		n.l, p.r = p, c
	}
	if g := p.p; g == nil {
		*root = n
	} else if g.l == p {
		g.l = n
	} else {
		g.r = n
	}
	if c != nil {
		c.p = p
	}
	n.p, p.p = p.p, n
	n.sz, p.sz = p.sz, sizeOf(p.l)+sizeOf(p.r)+1
}

// fixInsert restores the coloring properties after n has been linked in as a
// black leaf, walking from n toward the root. Viewed through the 2-3-4
// isometry a black node plus its red children form one bucket of 1-3 keys;
// each iteration inserts the black n into the bucket its parent belongs to:
//   - black parent: the bucket has room, color n red and stop.
//   - red parent, black or absent aunt: a 2-key bucket; rotate n (zig-zag,
//     twice) or its parent (zig-zig, once) to the bucket top, recolor so the
//     top is black with red children, and stop.
//   - red parent and red aunt: the bucket is full; split it by recoloring and
//     continue from the grandparent, which is black and takes n's role.
//
// n is black at the top of every iteration, so the loop only ever stops with
// a black root and rotateUp is never asked to rotate the root.
// Time: O(D); Space: O(1)
func fixInsert[T any, S constraints.Unsigned](root *nodePtr[T, S], n nodePtr[T, S]) {
	for n.p != nil {
		p := n.p
		if !p.red {
			n.red = true
			return
		}
		g := p.p // p is red, so it isn't the root
		if a := siblingOf(p); isRed(a) {
			p.red, a.red, n.red = false, false, true
			n = g
			continue
		} else if (n == p.l) != (p == g.l) { // zig-zag: n ends on top, black
			rotateUp(root, n)
			rotateUp(root, n)
			g.red = true
		} else { // zig-zig: p ends on top
			rotateUp(root, p)
			p.red, n.red, g.red = false, true, true
		}
		return
	}
}
