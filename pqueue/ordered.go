package pqueue

import "golang.org/x/exp/constraints"

// Less is the min-heap ordering.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Greater is the max-heap ordering.
func Greater[T constraints.Ordered](a, b T) bool {
	return a > b
}

// NewMin creates a heap that yields its smallest element first.
func NewMin[T constraints.Ordered](data ...T) *Heap[T] {
	return New[T](Less[T], data...)
}

// NewMax creates a heap that yields its largest element first.
func NewMax[T constraints.Ordered](data ...T) *Heap[T] {
	return New[T](Greater[T], data...)
}

func MinHeap[T constraints.Ordered]() *Heap[T] {
	return NewMin[T]()
}

func MaxHeap[T constraints.Ordered]() *Heap[T] {
	return NewMax[T]()
}
