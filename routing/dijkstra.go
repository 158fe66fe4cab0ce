package routing

import (
	"github.com/ttpr0/go-looprouting/graph"
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// shortest path
//*******************************************

type PQItem struct {
	item int32
	dist int32
}

// _Priority encodes (dist, node) into a single heap key so that equal
// distances are expanded in ascending node order, keeping results
// reproducible for identical inputs.
func _Priority(dist int32, node int32) int64 {
	return int64(dist)<<32 | int64(node)
}

type Path struct {
	nodes  Array[int32]
	edges  Array[int32]
	length float32
}

func (self *Path) GetNodes() Array[int32] {
	return self.nodes
}
func (self *Path) GetEdges() Array[int32] {
	return self.edges
}

// Length returns the true path length in meters (sum of edge lengths, not
// search weights).
func (self Path) Length() float32 {
	return self.length
}

//*******************************************
// dijkstra
//*******************************************

// Dijkstra computes a one-to-one shortest path over non-negative edge
// weights. Every instance carries its own workspace, instances must not be
// shared between goroutines.
type Dijkstra struct {
	g     graph.IGraph
	start int32
	end   int32
	flags Flags[SPTFlag]
	heap  PriorityQueue[PQItem, int64]
}

func NewDijkstra(g graph.IGraph, start, end int32) *Dijkstra {
	return &Dijkstra{
		g:     g,
		start: start,
		end:   end,
		flags: NewSPTFlags(g),
		heap:  NewPriorityQueue[PQItem, int64](100),
	}
}

func (self *Dijkstra) CalcShortestPath() bool {
	if !self.g.IsNode(self.start) || !self.g.IsNode(self.end) {
		return false
	}
	self.flags.Reset()
	self.heap.Clear()
	explorer := self.g.GetGraphExplorer()

	start_flag := self.flags.Get(self.start)
	start_flag.Dist = 0
	self.heap.Enqueue(PQItem{self.start, 0}, _Priority(0, self.start))

	for {
		curr_item, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		curr_id := curr_item.item
		curr_dist := curr_item.dist
		curr_flag := self.flags.Get(curr_id)
		if curr_flag.Dist < curr_dist {
			continue
		}
		if curr_id == self.end {
			return true
		}
		explorer.ForAdjacentEdges(curr_id, graph.FORWARD, graph.ADJACENT_EDGES, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			other_flag := self.flags.Get(other_id)
			new_length := curr_flag.Dist + explorer.GetEdgeWeight(ref)
			if other_flag.Dist > new_length {
				other_flag.Dist = new_length
				other_flag.PrevEdge = ref.EdgeID
				other_flag.PrevNode = curr_id
				self.heap.Enqueue(PQItem{other_id, new_length}, _Priority(new_length, other_id))
			}
		})
	}
}

func (self *Dijkstra) GetShortestPath() Path {
	nodes, edges, ok := ReconstructPath(&self.flags, self.end)
	if !ok {
		return Path{}
	}
	length := float32(0)
	for _, e := range edges {
		length += self.g.GetEdge(e).Length
	}
	return Path{
		nodes:  Array[int32](nodes),
		edges:  Array[int32](edges),
		length: length,
	}
}
