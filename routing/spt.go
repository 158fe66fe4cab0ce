package routing

import (
	"github.com/ttpr0/go-looprouting/graph"
	. "github.com/ttpr0/go-looprouting/util"
)

//*******************************************
// shortest path tree
//*******************************************

const _UNREACHED int32 = 1000000000

// SPTFlag is the per-node search state. PrevEdge and PrevNode link every
// settled node back towards its tree root.
type SPTFlag struct {
	Dist     int32
	PrevEdge int32
	PrevNode int32
}

func NewSPTFlags(g graph.IGraph) Flags[SPTFlag] {
	return NewFlags(int32(g.NodeCount()), SPTFlag{Dist: _UNREACHED, PrevEdge: -1, PrevNode: -1})
}

// CalcShortestPathTree grows a shortest path tree from the given start nodes
// (node, initial distance) until max_range is exceeded. flags has to be
// reset by the caller, results are written into it.
//
// Weights are taken from the explorer, so callers select the weighting by
// choosing the explorer (e.g. a penalized one during loop search).
func CalcShortestPathTree(g graph.IGraph, explorer graph.IGraphExplorer, starts Array[Tuple[int32, int32]], flags *Flags[SPTFlag], max_range int32) {
	heap := NewPriorityQueue[PQItem, int64](100)
	for _, start := range starts {
		start_flag := flags.Get(start.A)
		if start.B < start_flag.Dist {
			start_flag.Dist = start.B
			heap.Enqueue(PQItem{start.A, start.B}, _Priority(start.B, start.A))
		}
	}

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		curr_dist := curr_item.dist
		curr_flag := flags.Get(curr_id)
		if curr_flag.Dist < curr_dist {
			continue
		}
		explorer.ForAdjacentEdges(curr_id, graph.FORWARD, graph.ADJACENT_EDGES, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			other_flag := flags.Get(other_id)
			new_length := curr_flag.Dist + explorer.GetEdgeWeight(ref)
			if new_length > max_range {
				return
			}
			if other_flag.Dist > new_length {
				other_flag.Dist = new_length
				other_flag.PrevEdge = ref.EdgeID
				other_flag.PrevNode = curr_id
				heap.Enqueue(PQItem{other_id, new_length}, _Priority(new_length, other_id))
			}
		})
	}
}

// CalcShortestPathTreeTo works like CalcShortestPathTree but stops early once
// the target node has been settled.
func CalcShortestPathTreeTo(g graph.IGraph, explorer graph.IGraphExplorer, starts Array[Tuple[int32, int32]], flags *Flags[SPTFlag], max_range int32, target int32) {
	heap := NewPriorityQueue[PQItem, int64](100)
	for _, start := range starts {
		start_flag := flags.Get(start.A)
		if start.B < start_flag.Dist {
			start_flag.Dist = start.B
			heap.Enqueue(PQItem{start.A, start.B}, _Priority(start.B, start.A))
		}
	}

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		curr_dist := curr_item.dist
		curr_flag := flags.Get(curr_id)
		if curr_flag.Dist < curr_dist {
			continue
		}
		if curr_id == target {
			break
		}
		explorer.ForAdjacentEdges(curr_id, graph.FORWARD, graph.ADJACENT_EDGES, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			other_flag := flags.Get(other_id)
			new_length := curr_flag.Dist + explorer.GetEdgeWeight(ref)
			if new_length > max_range {
				return
			}
			if other_flag.Dist > new_length {
				other_flag.Dist = new_length
				other_flag.PrevEdge = ref.EdgeID
				other_flag.PrevNode = curr_id
				heap.Enqueue(PQItem{other_id, new_length}, _Priority(new_length, other_id))
			}
		})
	}
}

// ReconstructPath walks the predecessor links from target back to the tree
// root and returns the path in forward (root to target) order. ok is false
// if target was never reached.
func ReconstructPath(flags *Flags[SPTFlag], target int32) (List[int32], List[int32], bool) {
	target_flag := flags.Get(target)
	if target_flag.Dist >= _UNREACHED {
		return nil, nil, false
	}
	nodes := NewList[int32](10)
	edges := NewList[int32](10)
	curr_id := target
	for {
		nodes.Add(curr_id)
		curr_flag := flags.Get(curr_id)
		if curr_flag.PrevNode == -1 {
			break
		}
		edges.Add(curr_flag.PrevEdge)
		curr_id = curr_flag.PrevNode
	}
	for i, j := 0, nodes.Length()-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, edges.Length()-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return nodes, edges, true
}
