package pqueue

import (
	"fmt"
	"iter"
)

// LessFunc reports whether a must sit above b in the heap.
//
// It must describe a strict ordering: LessFunc(a, a) is false, and if both
// LessFunc(a, b) and LessFunc(b, c) are true then LessFunc(a, c) is true.
// Elements for which neither LessFunc(a, b) nor LessFunc(b, a) holds are
// treated as equal and leave the heap in no particular order.
type LessFunc[T any] func(a, b T) bool

// Heap is a binary heap ordered by a LessFunc.
//
// The elements live in items[1:]; items[0] is a zero-value placeholder so
// that parent and child positions are plain idx/2 and idx*2 arithmetic.
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	lessFunc LessFunc[T]
	items    []T
}

// New creates a heap ordered by lessFunc and adds data to it in order.
func New[T any](lessFunc LessFunc[T], data ...T) *Heap[T] {
	h := &Heap[T]{
		lessFunc: lessFunc,
		items:    make([]T, 1, len(data)+1),
	}

	for i := range data {
		h.Add(data[i])
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items) - 1
}

func (h *Heap[T]) IsEmpty() bool {
	return h.Len() == 0
}

// Add inserts value and moves it up until its parent no longer loses to it.
func (h *Heap[T]) Add(value T) {
	h.items = append(h.items, value)
	h.up(h.Len())
}

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	return h.items[1], true
}

// Next removes and returns the root element. The second result is false
// once the heap is empty, and stays false until something is added again.
func (h *Heap[T]) Next() (T, bool) {
	var zero T
	n := h.Len()
	if n == 0 {
		return zero, false
	}

	result := h.items[1]
	h.swap(1, n)

	// clear the tail so the backing array drops its reference.
	h.items[n] = zero
	h.items = h.items[:n]

	h.down(1)
	return result, true
}

// Drain returns a sequence that removes elements from the heap in order.
// An element handed to the loop body has already been removed, even if the
// loop breaks right after it.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := h.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

func (h *Heap[T]) up(idx int) {
	for idx > 1 {
		p := parent(idx)
		if !h.less(idx, p) {
			return
		}
		h.swap(idx, p)
		idx = p
	}
}

func (h *Heap[T]) down(idx int) {
	for h.hasChildren(idx) {
		child := h.extremeChild(idx)
		if !h.less(child, idx) {
			return
		}
		h.swap(child, idx)
		idx = child
	}
}

// extremeChild returns whichever child of idx should sit above the other.
// The caller must make sure idx has at least one child.
func (h *Heap[T]) extremeChild(idx int) int {
	l, r := left(idx), right(idx)
	n := h.Len()

	switch {
	case l > n:
		panic(fmt.Sprintf(ERR_NO_CHILDREN, l, r, n))
	case r > n:
		return l
	}

	if h.less(l, r) {
		return l
	}
	return r
}

func (h *Heap[T]) hasChildren(idx int) bool {
	return left(idx) <= h.Len()
}

func (h *Heap[T]) less(i, j int) bool {
	return h.lessFunc(h.items[i], h.items[j])
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func parent(idx int) int {
	return idx / 2
}

func left(idx int) int {
	return idx * 2
}

func right(idx int) int {
	return left(idx) + 1
}
