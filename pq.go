package gridpath

import "container/heap"

// Heap is a binary min-heap ordered by an injected less function. Items are
// located by identity, so each item may be queued at most once.
type Heap[T comparable] struct {
	queue priorityQueue[T]
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[T comparable](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{queue: priorityQueue[T]{
		less:         less,
		indexInQueue: make(map[T]int),
	}}
}

func (h *Heap[T]) Len() int    { return h.queue.Len() }
func (h *Heap[T]) Empty() bool { return h.queue.Len() == 0 }

// Push adds item and sifts it up.
func (h *Heap[T]) Push(item T) { heap.Push(&h.queue, item) }

// Pop removes and returns the minimum item. It panics on an empty heap.
func (h *Heap[T]) Pop() T { return heap.Pop(&h.queue).(T) }

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() T { return h.queue.items[0] }

func (h *Heap[T]) Contains(item T) bool {
	_, ok := h.queue.indexInQueue[item]
	return ok
}

// UpdateItem restores the heap order after the priority of item changed.
// Items not in the heap are ignored.
func (h *Heap[T]) UpdateItem(item T) {
	if index, ok := h.queue.indexInQueue[item]; ok {
		heap.Fix(&h.queue, index)
	}
}

// priorityQueue implements heap.Interface.
type priorityQueue[T comparable] struct {
	items        []T
	less         func(a, b T) bool
	indexInQueue map[T]int
}

func (queue priorityQueue[T]) Len() int           { return len(queue.items) }
func (queue priorityQueue[T]) Less(i, j int) bool { return queue.less(queue.items[i], queue.items[j]) }
func (queue priorityQueue[T]) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.indexInQueue[queue.items[i]] = i
	queue.indexInQueue[queue.items[j]] = j
}

func (queue *priorityQueue[T]) Push(x any) {
	item := x.(T)
	queue.indexInQueue[item] = len(queue.items)
	queue.items = append(queue.items, item)
}

func (queue *priorityQueue[T]) Pop() any {
	n := len(queue.items)
	item := queue.items[n-1]
	var zero T
	queue.items[n-1] = zero
	queue.items = queue.items[:n-1]
	delete(queue.indexInQueue, item)
	return item
}
