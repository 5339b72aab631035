package Trees

import "testing"

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func BenchmarkRBTree_Insert(b *testing.B) {
	for range b.N {
		tree := MakeRBTree[int, uint32]()
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func BenchmarkArrTree_Insert0(b *testing.B) {
	for range b.N {
		tree := New[int, uint32](0)
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func BenchmarkArrTree_Insert1(b *testing.B) {
	for range b.N {
		tree := New[int, uint32](bAddN)
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func createRB(b *testing.B) *RBTree[int, uint32] {
	b.Helper()
	tree := MakeRBTree[int, uint32]()
	for range bAddN {
		tree.Insert(rg.Int())
	}
	return tree
}

func createArr(b *testing.B) *ArrTree[int, uint32] {
	b.Helper()
	tree := New[int, uint32](bAddN)
	for range bAddN {
		tree.Insert(rg.Int())
	}
	return tree
}

func BenchmarkRBTree_Has(b *testing.B) {
	tree := createRB(b)
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.Has(rg.Int())
		}
	}
}

func BenchmarkArrTree_Has(b *testing.B) {
	tree := createArr(b)
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.Has(rg.Int())
		}
	}
}

func BenchmarkRBTree_RankK(b *testing.B) {
	tree := createRB(b)
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.RankK(uint32(rg.Intn(int(tree.Size()))))
		}
	}
}

func BenchmarkArrTree_RankK(b *testing.B) {
	tree := createArr(b)
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.RankK(uint32(rg.Intn(int(tree.Size()))))
		}
	}
}

func BenchmarkRBTree_RankOf(b *testing.B) {
	tree := createRB(b)
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.RankOf(rg.Int())
		}
	}
}
