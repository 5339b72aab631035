package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// ArrTree is the arena-backed variant of RBTree: the same red-black balancing
// over node slots addressed by index instead of pointer, following the layout
// in base. Parent, child and sibling links being indexes removes the
// pointer-cycle between a node and its children; the whole tree is released
// by dropping (or truncating) the two arrays.
// It supports only cmp.Ordered as values; balance and query costs are the
// same as RBTree's.
type ArrTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty ArrTree with space reserved for hint elements.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *ArrTree[T, S] {
	return &ArrTree[T, S]{base[T, S]{ifs: make([]info[S], 1, hint+1), vs: make([]T, 0, hint)}}
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1) amortized
func (u *ArrTree[T, S]) Insert(v T) bool {
	var prev S
	for curI := u.root; curI != 0; {
		if prev = curI; v < *u.getV(curI) {
			curI = u.getIf(curI).l
		} else if v > *u.getV(curI) {
			curI = u.getIf(curI).r
		} else {
			return false
		}
	}
	u.attach(v, prev, prev != 0 && v < *u.getV(prev))
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Has(v T) bool {
	for curI := u.root; curI != 0; {
		if v < *u.getV(curI) {
			curI = u.getIf(curI).l
		} else if v > *u.getV(curI) {
			curI = u.getIf(curI).r
		} else {
			return true
		}
	}
	return false
}

// Get the pointer to the element that's equal to v in the tree, nil if v
// isn't present. See Tree.RankK for the restriction on the pointee.
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Get(v T) *T {
	for curI := u.root; curI != 0; {
		if cvp := u.getV(curI); v < *cvp {
			curI = u.getIf(curI).l
		} else if v > *cvp {
			curI = u.getIf(curI).r
		} else {
			return cvp
		}
	}
	return nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Minimum() (T, bool) {
	if curI := u.root; curI == 0 {
		return *new(T), false
	} else {
		for u.getIf(curI).l != 0 {
			curI = u.getIf(curI).l
		}
		return *u.getV(curI), true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Maximum() (T, bool) {
	if curI := u.root; curI == 0 {
		return *new(T), false
	} else {
		for u.getIf(curI).r != 0 {
			curI = u.getIf(curI).r
		}
		return *u.getV(curI), true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Predecessor(v T) (T, bool) {
	var pi S
	for curI := u.root; curI != 0; {
		if v <= *u.getV(curI) {
			curI = u.getIf(curI).l
		} else {
			pi = curI
			curI = u.getIf(curI).r
		}
	}
	if pi == 0 {
		return *new(T), false
	}
	return *u.getV(pi), true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) Successor(v T) (T, bool) {
	var pi S
	for curI := u.root; curI != 0; {
		if v < *u.getV(curI) {
			pi = curI
			curI = u.getIf(curI).l
		} else {
			curI = u.getIf(curI).r
		}
	}
	if pi == 0 {
		return *new(T), false
	}
	return *u.getV(pi), true
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *ArrTree[T, S]) RankOf(v T) (S, bool) {
	var ra S
	for curI := u.root; curI != 0; {
		if cur := u.getIf(curI); v < *u.getV(curI) {
			curI = cur.l
		} else if v > *u.getV(curI) {
			ra += u.getIf(cur.l).sz + 1
			curI = cur.r
		} else {
			return ra + u.getIf(cur.l).sz, true
		}
	}
	return ra, false
}

// ordered checks that every slot's value sits between its children's.
func (u *ArrTree[T, S]) ordered(curI S) bool {
	cur := u.getIf(curI)
	if cur.l != 0 && (!(*u.getV(cur.l) < *u.getV(curI)) || !u.ordered(cur.l)) {
		return false
	}
	if cur.r != 0 && (!(*u.getV(curI) < *u.getV(cur.r)) || !u.ordered(cur.r)) {
		return false
	}
	return true
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n); Space: O(D)
func (u *ArrTree[T, S]) Corrupt() bool {
	if u.root != 0 && (u.getIf(u.root).red || u.getIf(u.root).p != 0) {
		return true
	}
	if _, bad := u.corrupt(u.root); bad {
		return true
	}
	return u.root != 0 && !u.ordered(u.root)
}
