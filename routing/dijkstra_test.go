package routing

import (
	"testing"
)

func TestDijkstraShortestPath(t *testing.T) {
	g, _ := _BuildSquareGraph()

	alg := NewDijkstra(g, 0, 2)
	if !alg.CalcShortestPath() {
		t.Fatal("expected a path from 0 to 2")
	}
	path := alg.GetShortestPath()
	if path.Length() != 200 {
		t.Errorf("expected length 200, got %v", path.Length())
	}
	// two equal paths exist, ties resolve towards the lower node id
	nodes := path.GetNodes()
	expected := []int32{0, 1, 2}
	if nodes.Length() != len(expected) {
		t.Fatalf("expected %v nodes, got %v", len(expected), nodes.Length())
	}
	for i, n := range expected {
		if nodes.Get(i) != n {
			t.Errorf("node %v: expected %v, got %v", i, n, nodes.Get(i))
		}
	}
}

func TestDijkstraUnreachable(t *testing.T) {
	g, _ := _BuildSquareGraph()

	alg := NewDijkstra(g, 0, 4)
	if alg.CalcShortestPath() {
		t.Error("expected no path to the isolated node")
	}
}

func TestDijkstraRepeatedQueries(t *testing.T) {
	g, _ := _BuildSquareGraph()

	alg := NewDijkstra(g, 0, 2)
	if !alg.CalcShortestPath() {
		t.Fatal("expected a path")
	}
	first := alg.GetShortestPath().Length()
	if !alg.CalcShortestPath() {
		t.Fatal("expected a path on re-run")
	}
	second := alg.GetShortestPath().Length()
	if first != second {
		t.Errorf("repeated query changed result: %v vs %v", first, second)
	}
}
