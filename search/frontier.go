package search

import "container/heap"

// Frontier holds discovered states awaiting expansion. The order Pop
// returns them in is the only thing that differs between DFS and BFS.
type Frontier[T any] interface {
	Push(item T)
	Pop() T
	IsEmpty() bool
	Len() int
}

type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) { s.items = append(s.items, item) }

func (s *Stack[T]) Pop() T {
	n := len(s.items)
	item := s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item
}

func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
func (s *Stack[T]) Len() int      { return len(s.items) }

type Queue[T any] struct {
	items []T
	head  int
}

func (q *Queue[T]) Push(item T) { q.items = append(q.items, item) }

func (q *Queue[T]) Pop() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 32 && q.head*2 > len(q.items) {
		q.items = append([]T(nil), q.items[q.head:]...)
		q.head = 0
	}
	return item
}

func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
func (q *Queue[T]) Len() int      { return len(q.items) - q.head }

type pqItem[T any, K comparable] struct {
	value    T
	key      K
	priority float64
	seq      uint64
	index    int
}

type pqHeap[T any, K comparable] []*pqItem[T, K]

func (h pqHeap[T, K]) Len() int { return len(h) }

// Equal priorities pop in insertion order.
func (h pqHeap[T, K]) Less(i, j int) bool {
	if h[i].priority == h[j].priority {
		return h[i].seq < h[j].seq
	}
	return h[i].priority < h[j].priority
}

func (h pqHeap[T, K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pqHeap[T, K]) Push(x any) {
	item := x.(*pqItem[T, K])
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *pqHeap[T, K]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// PriorityQueue is a min-heap keyed by K that supports decrease-key through
// Update. Several entries may share a key; Update acts on the most recently
// pushed one that is still queued.
type PriorityQueue[T any, K comparable] struct {
	heap  pqHeap[T, K]
	index map[K]*pqItem[T, K]
	seq   uint64
}

func NewPriorityQueue[T any, K comparable]() *PriorityQueue[T, K] {
	return &PriorityQueue[T, K]{index: make(map[K]*pqItem[T, K])}
}

func (pq *PriorityQueue[T, K]) Push(value T, key K, priority float64) {
	pq.seq++
	item := &pqItem[T, K]{value: value, key: key, priority: priority, seq: pq.seq}
	heap.Push(&pq.heap, item)
	pq.index[key] = item
}

func (pq *PriorityQueue[T, K]) Pop() T {
	item := heap.Pop(&pq.heap).(*pqItem[T, K])
	if pq.index[item.key] == item {
		delete(pq.index, item.key)
	}
	return item.value
}

// Update lowers the priority of the queued entry for key and replaces its
// value. An entry with an equal or lower priority is left alone. A missing
// key is pushed. It reports whether the queue changed.
func (pq *PriorityQueue[T, K]) Update(value T, key K, priority float64) bool {
	item, ok := pq.index[key]
	if !ok {
		pq.Push(value, key, priority)
		return true
	}
	if item.priority <= priority {
		return false
	}
	item.value = value
	item.priority = priority
	heap.Fix(&pq.heap, item.index)
	return true
}

func (pq *PriorityQueue[T, K]) Priority(key K) (float64, bool) {
	item, ok := pq.index[key]
	if !ok {
		return 0, false
	}
	return item.priority, true
}

func (pq *PriorityQueue[T, K]) IsEmpty() bool { return len(pq.heap) == 0 }
func (pq *PriorityQueue[T, K]) Len() int      { return len(pq.heap) }
