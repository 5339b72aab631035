package Trees

import "golang.org/x/exp/constraints"

// CRBTree is the version of RBTree for arbitrary value types ordered by a
// user-provided comparison function. All methods are implemented exactly as
// RBTree except for using Cmp for comparisons; the rotation and fixup logic
// is shared since it never looks at values.
type CRBTree[T any, S constraints.Unsigned] struct {
	root nodePtr[T, S]
	//returns a negative number if first < second, 0 if first == second, a
	//positive number if first > second. See cmp.Compare for an example.
	Cmp func(T, T) int
}

// MakeCRBTree returns an empty CRBTree ordered by cmp.
func MakeCRBTree[T any, S constraints.Unsigned](cmp func(T, T) int) *CRBTree[T, S] {
	return &CRBTree[T, S]{Cmp: cmp}
}

func (u *CRBTree[T, S]) Size() S {
	return sizeOf(u.root)
}

func (u *CRBTree[T, S]) Insert(v T) bool {
	var prev nodePtr[T, S]
	for cur := u.root; cur != nil; {
		prev = cur
		if order := u.Cmp(v, cur.v); order < 0 {
			cur = cur.l
		} else if order > 0 {
			cur = cur.r
		} else {
			return false
		}
	}
	n := &node[T, S]{v: v, p: prev, sz: 1}
	if prev == nil {
		u.root = n
	} else if u.Cmp(v, prev.v) < 0 {
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

func (u *CRBTree[T, S]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if order := u.Cmp(v, cur.v); order < 0 {
			cur = cur.l
		} else if order > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

func (u *CRBTree[T, S]) Get(v T) *T {
	for cur := u.root; cur != nil; {
		if order := u.Cmp(v, cur.v); order < 0 {
			cur = cur.l
		} else if order > 0 {
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

func (u *CRBTree[T, S]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

func (u *CRBTree[T, S]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

func (u *CRBTree[T, S]) Predecessor(v T) (T, bool) {
	var p nodePtr[T, S]
	for cur := u.root; cur != nil; {
		if u.Cmp(v, cur.v) <= 0 {
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

func (u *CRBTree[T, S]) Successor(v T) (T, bool) {
	var p nodePtr[T, S]
	for cur := u.root; cur != nil; {
		if u.Cmp(v, cur.v) < 0 {
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

func (u *CRBTree[T, S]) RankOf(v T) (S, bool) {
	var ra S
	for cur := u.root; cur != nil; {
		if order := u.Cmp(v, cur.v); order < 0 {
			cur = cur.l
		} else if order > 0 {
			ra += sizeOf(cur.l) + 1
			cur = cur.r
		} else {
			return ra + sizeOf(cur.l), true
		}
	}
	return ra, false
}

func (u *CRBTree[T, S]) RankK(k S) *T {
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

func (u *CRBTree[T, S]) InOrder() func() (T, bool) {
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

func (u *CRBTree[T, S]) Clear() {
	u.root = nil
}

func (u *CRBTree[T, S]) corrupt(cur nodePtr[T, S]) (uint, bool) {
	if cur == nil {
		return 0, false
	}
	if cur.l != nil && (cur.l.p != cur || u.Cmp(cur.l.v, cur.v) >= 0 || cur.red && cur.l.red) {
		return 0, true
	}
	if cur.r != nil && (cur.r.p != cur || u.Cmp(cur.v, cur.r.v) >= 0 || cur.red && cur.r.red) {
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

func (u *CRBTree[T, S]) Corrupt() bool {
	if u.root != nil && (u.root.red || u.root.p != nil) {
		return true
	}
	_, bad := u.corrupt(u.root)
	return bad
}
