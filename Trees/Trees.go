package Trees

import "golang.org/x/exp/constraints"

// Tree is an ordered set of distinct values augmented with subtree sizes, so
// rank queries can be answered in O(log n) alongside the usual ordered-set
// queries. Receivers that have a bool as a second return value indicate
// whether the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false); in this case the value of x is
// undefined and shouldn't be used. Unless an implementation notes otherwise,
// methods are implemented iteratively and none of them blocks.
// S is the unsigned type used for subtree sizes and ranks. It must be a wide
// upperbound for the size of the tree; overflowing S corrupts the size
// counters silently.
// Implementations are not safe for concurrent use; callers sharing a tree
// across goroutines must serialize access externally.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v into the Tree. Returns true if v was absent and is now present,
	//false if v was already in the tree, in which case nothing changed.
	Insert(v T) bool
	//Has reports whether v is in the tree.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RankOf v in the tree according to in-order, starting from 0. If v isn't
	//present, returns the rank v would occupy if inserted, and false.
	RankOf(v T) (S, bool)
	//RankK returns a pointer to the element at rank k, starting from 0, or
	//nil if k>=Size(). The pointee mustn't be mutated in a way that changes
	//its ordering relative to other elements.
	RankK(k S) *T
	//Size of the tree.
	Size() S
	//InOrder returns a closure function f acting like an iterator. f gives
	//elements in the in-order traversal of the tree: val, valid = f(). val is
	//meaningful only while valid is true; valid can't turn true after it
	//first became false. The tree must not be modified during the iteration.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree violates any of its structural
	//properties: ordering, parent links, size counters, or coloring. A
	//healthy tree always returns false; this exists for tests and debugging.
	Corrupt() bool
}

// RotateRootError is the panic value for a rotation requested on a node with
// no parent. The insertion fixup never asks for one, so seeing this panic
// means the tree structure was corrupted beforehand.
type RotateRootError struct{}

func (RotateRootError) Error() string {
	return "Trees: rotating a node with no parent"
}
