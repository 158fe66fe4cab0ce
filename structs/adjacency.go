package structs

import (
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// adjacency array
//*******************************************

type _NodeEntry struct {
	Start int32
	Count int16
}

type _EdgeEntry struct {
	EdgeID  int32
	OtherID int32
}

// AdjacencyArray stores the incident edges of every node as compact index
// lists. Edges are undirected, so every edge appears in the list of both of
// its endpoints.
type AdjacencyArray struct {
	node_entries Array[_NodeEntry]
	edge_entries Array[_EdgeEntry]
}

func BuildAdjacency(node_count int, edges Array[Edge]) AdjacencyArray {
	counts := NewArray[int16](node_count)
	for _, edge := range edges {
		counts[edge.NodeA] += 1
		counts[edge.NodeB] += 1
	}
	node_entries := NewArray[_NodeEntry](node_count)
	start := int32(0)
	for i := 0; i < node_count; i++ {
		node_entries[i] = _NodeEntry{Start: start, Count: 0}
		start += int32(counts[i])
	}
	edge_entries := NewArray[_EdgeEntry](int(start))
	for id, edge := range edges {
		entry_a := &node_entries[edge.NodeA]
		edge_entries[entry_a.Start+int32(entry_a.Count)] = _EdgeEntry{EdgeID: int32(id), OtherID: edge.NodeB}
		entry_a.Count += 1
		entry_b := &node_entries[edge.NodeB]
		edge_entries[entry_b.Start+int32(entry_b.Count)] = _EdgeEntry{EdgeID: int32(id), OtherID: edge.NodeA}
		entry_b.Count += 1
	}
	return AdjacencyArray{
		node_entries: node_entries,
		edge_entries: edge_entries,
	}
}

func (self *AdjacencyArray) GetDegree(node int32) int16 {
	return self.node_entries[node].Count
}

func (self *AdjacencyArray) GetAccessor() AdjArrayAccessor {
	return AdjArrayAccessor{
		topology: self,
		state:    0,
		end:      0,
	}
}

//*******************************************
// adjacency accessor
//*******************************************

// AdjArrayAccessor iterates the incident edges of a node. Not safe for
// concurrent use, create one accessor per traversal.
type AdjArrayAccessor struct {
	topology *AdjacencyArray
	state    int32
	end      int32
}

func (self *AdjArrayAccessor) SetBaseNode(node int32) {
	entry := self.topology.node_entries[node]
	self.state = entry.Start
	self.end = entry.Start + int32(entry.Count)
}

func (self *AdjArrayAccessor) Next() bool {
	if self.state >= self.end {
		return false
	}
	self.state += 1
	return true
}

func (self *AdjArrayAccessor) GetEdgeID() int32 {
	return self.topology.edge_entries[self.state-1].EdgeID
}

func (self *AdjArrayAccessor) GetOtherID() int32 {
	return self.topology.edge_entries[self.state-1].OtherID
}
