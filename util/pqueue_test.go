package util

import (
	"testing"
)

func TestPriorityQueueOrdering(t *testing.T) {
	heap := NewPriorityQueue[string, int](4)
	heap.Enqueue("c", 3)
	heap.Enqueue("a", 1)
	heap.Enqueue("d", 4)
	heap.Enqueue("b", 2)

	expected := []string{"a", "b", "c", "d"}
	for _, e := range expected {
		item, ok := heap.Dequeue()
		if !ok {
			t.Fatal("queue drained early")
		}
		if item != e {
			t.Errorf("expected %v, got %v", e, item)
		}
	}
	if _, ok := heap.Dequeue(); ok {
		t.Error("expected empty queue")
	}
}

func TestFlagsReset(t *testing.T) {
	flags := NewFlags[int32](4, -1)

	*flags.Get(2) = 42
	if !flags.IsSet(2) {
		t.Error("expected flag 2 to be set")
	}
	if flags.IsSet(1) {
		t.Error("expected flag 1 to be unset")
	}

	flags.Reset()
	if flags.IsSet(2) {
		t.Error("reset did not clear flag 2")
	}
	if *flags.Get(2) != -1 {
		t.Errorf("expected default after reset, got %v", *flags.Get(2))
	}
}
