package structs

import (
	"testing"

	. "github.com/ttpr0/go-looprouting/util"
)

func TestBuildAdjacency(t *testing.T) {
	edges := Array[Edge]{
		{NodeA: 0, NodeB: 1},
		{NodeA: 1, NodeB: 2},
		{NodeA: 2, NodeB: 0},
	}
	adj := BuildAdjacency(3, edges)

	for node := int32(0); node < 3; node++ {
		if adj.GetDegree(node) != 2 {
			t.Errorf("node %v: expected degree 2, got %v", node, adj.GetDegree(node))
		}
	}

	// every edge appears once in the adjacency of both endpoints
	accessor := adj.GetAccessor()
	accessor.SetBaseNode(1)
	seen := NewDict[int32, int32](2)
	for accessor.Next() {
		seen.Set(accessor.GetEdgeID(), accessor.GetOtherID())
	}
	if seen.Length() != 2 {
		t.Fatalf("expected 2 incident edges, got %v", seen.Length())
	}
	if !seen.ContainsKey(0) || seen.Get(0) != 0 {
		t.Error("edge 0 missing or wrong opposite node")
	}
	if !seen.ContainsKey(1) || seen.Get(1) != 2 {
		t.Error("edge 1 missing or wrong opposite node")
	}
}

func TestEdgeGetters(t *testing.T) {
	edge := Edge{NodeA: 3, NodeB: 7, GainAB: 12, GainBA: 0}
	if edge.GetOtherNode(3) != 7 || edge.GetOtherNode(7) != 3 {
		t.Error("GetOtherNode returns wrong endpoint")
	}
	if edge.GetOtherNode(5) != -1 {
		t.Error("expected -1 for a non-endpoint")
	}
	if edge.GetGain(3) != 12 {
		t.Errorf("expected 12 m gain from NodeA, got %v", edge.GetGain(3))
	}
	if edge.GetGain(7) != 0 {
		t.Errorf("expected 0 m gain from NodeB, got %v", edge.GetGain(7))
	}
}
