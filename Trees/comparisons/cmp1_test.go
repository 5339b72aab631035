package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-rbtrees/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with the red-black tree from https://github.com/emirpasic/gods,
// the left-leaning red-black tree from https://github.com/petar/GoLLRB, and
// the B-tree from https://github.com/google/btree. The gods tree is also the
// reference for the correctness cross-checks since it maintains the same
// ordered-set semantics.

const benchmarkItemCount = 1 << 14

var rg = *rand.New(rand.NewSource(1))

func setupRB(b *testing.B) *Trees.RBTree[int, uint32] {
	b.Helper()
	t := Trees.MakeRBTree[int, uint32]()
	for i := range benchmarkItemCount {
		t.Insert(i)
	}
	return t
}

func setupArr(b *testing.B) *Trees.ArrTree[int, uint32] {
	b.Helper()
	t := Trees.New[int, uint32](benchmarkItemCount)
	for i := range benchmarkItemCount {
		t.Insert(i)
	}
	return t
}

func setupGods(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for i := range benchmarkItemCount {
		t.Put(i, nil)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for i := range benchmarkItemCount {
		t.ReplaceOrInsert(llrb.Int(i))
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for i := range benchmarkItemCount {
		t.ReplaceOrInsert(i)
	}
	return t
}

func TestAgainstGods(t *testing.T) {
	mine := Trees.MakeRBTree[int, uint32]()
	ref := redblacktree.NewWithIntComparator()
	for range benchmarkItemCount {
		v := rg.Intn(benchmarkItemCount * 2)
		mine.Insert(v)
		ref.Put(v, nil)
	}
	if int(mine.Size()) != ref.Size() {
		t.Fatalf("size %d, reference has %d", mine.Size(), ref.Size())
	}
	if mine.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	keys := ref.Keys()
	f := mine.InOrder()
	for i, k := range keys {
		v, ok := f()
		if !ok {
			t.Fatalf("traversal ended early at %d", i)
		}
		if v != k.(int) {
			t.Fatalf("traversal diverges at %d: %d vs %v", i, v, k)
		}
		if a := mine.RankK(uint32(i)); a == nil || *a != k.(int) {
			t.Fatalf("wrong key at rank %d, reference has %v", i, k)
		}
		if r, in := mine.RankOf(k.(int)); !in || r != uint32(i) {
			t.Fatalf("wrong rank %d for key %v, reference says %d", r, k, i)
		}
	}
	if _, ok := f(); ok {
		t.Fatal("traversal has extra elements")
	}
}

func Benchmark1InsertRBTree(b *testing.B) {
	for range b.N {
		t := Trees.MakeRBTree[int, uint32]()
		for i := range benchmarkItemCount {
			t.Insert(i)
		}
	}
}

func Benchmark1InsertArrTree(b *testing.B) {
	for range b.N {
		t := Trees.New[int, uint32](benchmarkItemCount)
		for i := range benchmarkItemCount {
			t.Insert(i)
		}
	}
}

func Benchmark1InsertGods(b *testing.B) {
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for i := range benchmarkItemCount {
			t.Put(i, nil)
		}
	}
}

func Benchmark1InsertLLRB(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for i := range benchmarkItemCount {
			t.ReplaceOrInsert(llrb.Int(i))
		}
	}
}

func Benchmark1InsertBTree(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for i := range benchmarkItemCount {
			t.ReplaceOrInsert(i)
		}
	}
}

func Benchmark2HasRBTree(b *testing.B) {
	t := setupRB(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if !t.Has(i) {
				b.Fail()
			}
		}
	}
}

func Benchmark2HasArrTree(b *testing.B) {
	t := setupArr(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if !t.Has(i) {
				b.Fail()
			}
		}
	}
}

func Benchmark2HasGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if _, in := t.Get(i); !in {
				b.Fail()
			}
		}
	}
}

func Benchmark2HasLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if !t.Has(llrb.Int(i)) {
				b.Fail()
			}
		}
	}
}

func Benchmark2HasBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if !t.Has(i) {
				b.Fail()
			}
		}
	}
}
