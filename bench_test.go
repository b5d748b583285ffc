package bstree

import (
	"math/rand"
	"testing"

	gbtree "github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Compares with https://github.com/google/btree and
// https://github.com/petar/GoLLRB. Both rebalance (B-tree fanout / LLRB
// rotations); this tree relies on a randomized insertion order instead, so
// the comparison shows what the missing rebalancing costs and saves.

const benchmarkItemCount = 100000

func benchValues() []int {
	r := rand.New(rand.NewSource(42))
	values := make([]int, benchmarkItemCount)
	for i := range values {
		values[i] = r.Int()
	}
	return values
}

func setupTree(b *testing.B, values []int) *Tree[int] {
	b.Helper()
	tree := New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

func setupGBTree(b *testing.B, values []int) *gbtree.BTreeG[int] {
	b.Helper()
	tr := gbtree.NewOrderedG[int](32)
	for _, v := range values {
		tr.ReplaceOrInsert(v)
	}
	return tr
}

func setupLLRB(b *testing.B, values []int) *llrb.LLRB {
	b.Helper()
	tr := llrb.New()
	for _, v := range values {
		tr.ReplaceOrInsert(llrb.Int(v))
	}
	return tr
}

func BenchmarkInsertBST(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, v := range values {
			tree.Insert(v)
		}
	}
}

func BenchmarkInsertGBTree(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := gbtree.NewOrderedG[int](32)
		for _, v := range values {
			tr.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := llrb.New()
		for _, v := range values {
			tr.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkBulkLoadBST(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromValues(values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkContainsBST(b *testing.B) {
	values := benchValues()
	tree := setupTree(b, values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tree.Contains(values[i%len(values)]) {
			b.Fail()
		}
	}
}

func BenchmarkContainsGBTree(b *testing.B) {
	values := benchValues()
	tr := setupGBTree(b, values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Has(values[i%len(values)]) {
			b.Fail()
		}
	}
}

func BenchmarkContainsLLRB(b *testing.B) {
	values := benchValues()
	tr := setupLLRB(b, values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Has(llrb.Int(values[i%len(values)])) {
			b.Fail()
		}
	}
}

func BenchmarkDeleteBST(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := setupTree(b, values)
		b.StartTimer()
		for _, v := range values {
			tree.Delete(v)
		}
	}
}

func BenchmarkDeleteGBTree(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := setupGBTree(b, values)
		b.StartTimer()
		for _, v := range values {
			tr.Delete(v)
		}
	}
}

func BenchmarkDeleteLLRB(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := setupLLRB(b, values)
		b.StartTimer()
		for _, v := range values {
			tr.Delete(llrb.Int(v))
		}
	}
}
