package Trees

import "golang.org/x/exp/constraints"

// A node slot in the arena-backed tree.
// All links are indexes into the ifs array; 0 plays the role of nil. The
// zero value is exactly the slot 0 sentinel: black, size 0, looping to
// itself, so size and color reads never need a nil branch.
type info[S constraints.Unsigned] struct {
	l, r, p, sz S
	red         bool
}

// base carries the representation shared by the arena-backed trees: the
// slot array ifs, the value array vs, and the root index. ifs[0] is the
// sentinel; slot i>=1 stores its value at vs[i-1]. Slots are only ever
// appended (nothing in this package frees a single node), so indexes stay
// stable for the lifetime of the tree.
type base[T any, S constraints.Unsigned] struct {
	root S
	ifs  []info[S]
	vs   []T
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// sibling of ni, the other child of its parent. Returns 0 for the root,
// since the sentinel's children are 0 and ni can never be one of them.
func (u *base[T, S]) sibling(ni S) S {
	if p := u.getIf(u.getIf(ni).p); p.l == ni {
		return p.r
	} else {
		return p.l
	}
}

// rotateUp is the index form of the rotation in Nodes.go: raises ni one
// level to its own side and lowers its parent, then restores the two size
// counters bottom-up. The sentinel absorbs child-size reads branch-free.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateUp(ni S) {
	n := u.getIf(ni)
	pi := n.p
	if pi == 0 {
		panic(RotateRootError{})
	}
	p := u.getIf(pi)
	var ci S
	if p.l == ni {
		ci = n.r
		n.r, p.l = pi, ci
	} else {
		ci = n.l
		n.l, p.r = pi, ci
	}
	if gi := p.p; gi == 0 {
		u.root = ni
	} else if g := u.getIf(gi); g.l == pi {
		g.l = ni
	} else {
		g.r = ni
	}
	if ci != 0 {
		u.getIf(ci).p = pi
	}
	n.p, p.p = p.p, ni
	n.sz, p.sz = p.sz, u.getIf(p.l).sz+u.getIf(p.r).sz+1
}

// fixInsert is the index form of the fixup in Nodes.go; see there for the
// case analysis. ni must be a freshly linked black slot.
// Time: O(D); Space: O(1)
func (u *base[T, S]) fixInsert(ni S) {
	for u.getIf(ni).p != 0 {
		pi := u.getIf(ni).p
		if !u.getIf(pi).red {
			u.getIf(ni).red = true
			return
		}
		gi := u.getIf(pi).p
		if ai := u.sibling(pi); u.getIf(ai).red {
			u.getIf(pi).red, u.getIf(ai).red, u.getIf(ni).red = false, false, true
			ni = gi
			continue
		} else if (u.getIf(pi).l == ni) != (u.getIf(gi).l == pi) {
			u.rotateUp(ni)
			u.rotateUp(ni)
			u.getIf(gi).red = true
		} else {
			u.rotateUp(pi)
			u.getIf(pi).red, u.getIf(ni).red, u.getIf(gi).red = false, true, true
		}
		return
	}
}

// attach links a new black slot holding v under prev (0 to become the root),
// bumps every ancestor's size, and recolors. left tells which side of prev
// the slot goes to.
func (u *base[T, S]) attach(v T, prev S, left bool) {
	u.ifs = append(u.ifs, info[S]{p: prev, sz: 1})
	u.vs = append(u.vs, v)
	ni := S(len(u.ifs) - 1)
	if prev == 0 {
		u.root = ni
	} else if left {
		u.getIf(prev).l = ni
	} else {
		u.getIf(prev).r = ni
	}
	for a := prev; a != 0; a = u.getIf(a).p {
		u.getIf(a).sz++
	}
	u.fixInsert(ni)
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() S {
	return u.getIf(u.root).sz
}

// RankK [Tree.RankK]
// Time: O(D); Space: O(1)
func (u *base[T, S]) RankK(k S) *T {
	for curI := u.root; curI != 0; {
		if li := u.getIf(curI).l; k < u.getIf(li).sz {
			curI = li
		} else if k > u.getIf(li).sz {
			k -= u.getIf(li).sz + 1
			curI = u.getIf(curI).r
		} else {
			return u.getV(curI)
		}
	}
	return nil
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function; Space: O(1)
func (u *base[T, S]) InOrder() func() (T, bool) {
	curI := u.root
	for u.getIf(curI).l != 0 {
		curI = u.getIf(curI).l
	}
	return func() (r T, has bool) {
		if curI == 0 {
			return
		}
		r, has = *u.getV(curI), true
		if ri := u.getIf(curI).r; ri != 0 {
			for curI = ri; u.getIf(curI).l != 0; {
				curI = u.getIf(curI).l
			}
		} else {
			pi := u.getIf(curI).p
			for pi != 0 && u.getIf(pi).r == curI {
				curI, pi = pi, u.getIf(pi).p
			}
			curI = pi
		}
		return
	}
}

// Clear the tree, also resetting the memory of the value array if reset is
// true. O(1) if reset==false, O(size) if reset==true. Doesn't release the
// underlying arrays, so slots are reused by later insertions.
func (u *base[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
	}
	u.ifs, u.vs, u.root = u.ifs[:1], u.vs[:0], 0
}

// corrupt checks parent links, sizes and coloring of the subtree at curI,
// returning its black count; value ordering is up to the typed wrapper.
func (u *base[T, S]) corrupt(curI S) (uint, bool) {
	if curI == 0 {
		return 0, false
	}
	cur := u.getIf(curI)
	if cur.l != 0 && (u.getIf(cur.l).p != curI || cur.red && u.getIf(cur.l).red) {
		return 0, true
	}
	if cur.r != 0 && (u.getIf(cur.r).p != curI || cur.red && u.getIf(cur.r).red) {
		return 0, true
	}
	if cur.sz != u.getIf(cur.l).sz+u.getIf(cur.r).sz+1 {
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

func (u *base[T, S]) minDepth(curI S, cd uint) uint {
	if curI == 0 {
		return cd - 1
	}
	return min(u.minDepth(u.getIf(curI).l, cd+1), u.minDepth(u.getIf(curI).r, cd+1))
}

// MinDepth of any leaf, in edges from the root. Recursive.
func (u *base[T, S]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u *base[T, S]) maxDepth(curI S, cd uint) uint {
	if curI == 0 {
		return cd - 1
	}
	return max(u.maxDepth(u.getIf(curI).l, cd+1), u.maxDepth(u.getIf(curI).r, cd+1))
}

// MaxDepth of any leaf, in edges from the root. Recursive.
func (u *base[T, S]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}
