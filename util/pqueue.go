package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQEntry[T any, P constraints.Ordered] struct {
	item     T
	priority P
}

// Binary min-heap keyed by priority.
//
// Dequeue order for equal priorities is determined by the heap structure and
// is fully deterministic for a fixed enqueue sequence.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries []_PQEntry[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		entries: make([]_PQEntry[T, P], 0, cap),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.entries = append(self.entries, _PQEntry[T, P]{item: item, priority: priority})
	index := len(self.entries) - 1
	for index > 0 {
		parent := (index - 1) / 2
		if self.entries[parent].priority <= self.entries[index].priority {
			break
		}
		self.entries[parent], self.entries[index] = self.entries[index], self.entries[parent]
		index = parent
	}
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if len(self.entries) == 0 {
		var t T
		return t, false
	}
	top := self.entries[0].item
	last := len(self.entries) - 1
	self.entries[0] = self.entries[last]
	self.entries = self.entries[:last]
	index := 0
	for {
		left := 2*index + 1
		right := 2*index + 2
		smallest := index
		if left < last && self.entries[left].priority < self.entries[smallest].priority {
			smallest = left
		}
		if right < last && self.entries[right].priority < self.entries[smallest].priority {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.entries[smallest], self.entries[index] = self.entries[index], self.entries[smallest]
		index = smallest
	}
	return top, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return len(self.entries)
}

func (self *PriorityQueue[T, P]) Clear() {
	self.entries = self.entries[:0]
}
