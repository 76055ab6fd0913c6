package ledger

import (
	"container/heap"
	"iter"
	"slices"
)

// Recent returns the transactions ordered by date descending, ties
// broken by creation time descending. The sequence is lazy and backed
// by a heap: taking the first k of n transactions costs O(n + k log n)
// instead of a full sort, and every range over the sequence restarts
// from the top.
func Recent(txns []Transaction) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		h := txHeap(slices.Clone(txns))
		heap.Init(&h)
		for h.Len() > 0 {
			if !yield(heap.Pop(&h).(Transaction)) {
				return
			}
		}
	}
}

// TakeRecent materializes the first n transactions of Recent.
func TakeRecent(txns []Transaction, n int) []Transaction {
	if n <= 0 {
		return nil
	}
	out := make([]Transaction, 0, n)
	for t := range Recent(txns) {
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}

type txHeap []Transaction

func (h txHeap) Len() int { return len(h) }

func (h txHeap) Less(i, j int) bool {
	if h[i].Date != h[j].Date {
		return h[i].Date > h[j].Date
	}
	return h[i].CreatedAt.After(h[j].CreatedAt)
}

func (h txHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *txHeap) Push(x any) { *h = append(*h, x.(Transaction)) }

func (h *txHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]
	return t
}
