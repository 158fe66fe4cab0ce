package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-looprouting/attr"
	"github.com/ttpr0/go-looprouting/comps"
	"github.com/ttpr0/go-looprouting/geo"
	"github.com/ttpr0/go-looprouting/structs"
	. "github.com/ttpr0/go-looprouting/util"
	"golang.org/x/exp/slog"
)

// ErrIngestion marks failures while reading or decoding the OSM source.
var ErrIngestion = errors.New("parser: graph ingestion failed")

// ParseGraph reads an .osm.pbf extract and builds the walking graph.
// Junction nodes (shared by more than one way segment) become graph nodes,
// the way geometry between junctions becomes edge geometry. Elevations are
// sampled from the given provider.
func ParseGraph(pbf_file string, decoder IOSMDecoder, elevation attr.IElevationProvider) (*comps.GraphBase, error) {
	nodes := NewList[OSMNode](10000)
	edges := NewList[OSMEdge](10000)
	index_mapping := NewDict[int64, int](10000)
	if err := _ParseOsm(pbf_file, decoder, &nodes, &edges, &index_mapping); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIngestion, err)
	}
	slog.Info(fmt.Sprintf("parsed osm: %v nodes, %v edges", nodes.Length(), edges.Length()))
	base := _CreateGraphBase(&nodes, &edges, elevation)
	return base, nil
}

func _ParseOsm(filename string, decoder IOSMDecoder, nodes *List[OSMNode], edges *List[OSMEdge], index_mapping *Dict[int64, int]) error {
	osm_nodes := NewDict[int64, TempNode](1000)

	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	if err := _InitWayHandler(scanner, decoder, &osm_nodes); err != nil {
		scanner.Close()
		return err
	}
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	if err := _NodeHandler(scanner, &osm_nodes, nodes, index_mapping); err != nil {
		scanner.Close()
		return err
	}
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	if err := _WayHandler(scanner, decoder, edges, &osm_nodes, index_mapping); err != nil {
		scanner.Close()
		return err
	}
	scanner.Close()
	for i := 0; i < edges.Length(); i++ {
		e := edges.Get(i)
		node_a := nodes.Get(e.NodeA)
		node_a.Edges.Add(int32(i))
		nodes.Set(e.NodeA, node_a)
		node_b := nodes.Get(e.NodeB)
		node_b.Edges.Add(int32(i))
		nodes.Set(e.NodeB, node_b)
	}
	return nil
}

func _CreateGraphBase(osmnodes *List[OSMNode], osmedges *List[OSMEdge], elevation attr.IElevationProvider) *comps.GraphBase {
	nodes := NewList[structs.Node](osmnodes.Length())
	edges := NewList[structs.Edge](osmedges.Length())
	edge_geoms := NewList[geo.CoordArray](osmedges.Length())

	for _, osmnode := range *osmnodes {
		nodes.Add(structs.Node{
			Loc:       osmnode.Point,
			Elevation: elevation.GetElevation(osmnode.Point),
		})
	}

	for _, osmedge := range *osmedges {
		geom := geo.CoordArray(osmedge.Nodes)
		elev_a := nodes.Get(osmedge.NodeA).Elevation
		elev_b := nodes.Get(osmedge.NodeB).Elevation
		gain_ab := elev_b - elev_a
		if gain_ab < 0 {
			gain_ab = 0
		}
		gain_ba := elev_a - elev_b
		if gain_ba < 0 {
			gain_ba = 0
		}
		edges.Add(structs.Edge{
			NodeA:  int32(osmedge.NodeA),
			NodeB:  int32(osmedge.NodeB),
			Type:   osmedge.Type,
			Length: geo.LineLength(geom),
			GainAB: gain_ab,
			GainBA: gain_ba,
		})
		edge_geoms.Add(geom)
	}

	return comps.NewGraphBase(Array[structs.Node](nodes), Array[structs.Edge](edges), edge_geoms)
}

//*******************************************
// osm handler methods
//*******************************************

func _InitWayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, osm_nodes *Dict[int64, TempNode]) error {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			if l < 2 {
				continue
			}
			for i := 0; i < l; i++ {
				ndref := nodes[i].FeatureID().Ref()
				if !osm_nodes.ContainsKey(ndref) {
					(*osm_nodes)[ndref] = TempNode{geo.Coord{0, 0}, 1}
				} else {
					node := (*osm_nodes)[ndref]
					node.Count += 1
					(*osm_nodes)[ndref] = node
				}
			}
			node_a := (*osm_nodes)[nodes[0].FeatureID().Ref()]
			node_b := (*osm_nodes)[nodes[l-1].FeatureID().Ref()]
			node_a.Count += 1
			node_b.Count += 1
			(*osm_nodes)[nodes[0].FeatureID().Ref()] = node_a
			(*osm_nodes)[nodes[l-1].FeatureID().Ref()] = node_b
		default:
			continue
		}
	}
	return scanner.Err()
}

func _NodeHandler(scanner *osmpbf.Scanner, osm_nodes *Dict[int64, TempNode], nodes *List[OSMNode], index_mapping *Dict[int64, int]) error {
	i := 0
	c := 0

	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !osm_nodes.ContainsKey(id) {
				continue
			}
			c += 1
			if c%100000 == 0 {
				slog.Debug(fmt.Sprintf("read %v nodes", c))
			}
			on := osm_nodes.Get(id)
			if on.Count > 1 {
				node := OSMNode{geo.Coord{float32(object.Lon), float32(object.Lat)}, NewList[int32](3)}
				nodes.Add(node)
				index_mapping.Set(id, i)
				i += 1
			}
			on.Point[0] = float32(object.Lon)
			on.Point[1] = float32(object.Lat)
			osm_nodes.Set(id, on)
		default:
			continue
		}
	}
	return scanner.Err()
}

func _WayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, edges *List[OSMEdge], osm_nodes *Dict[int64, TempNode], index_mapping *Dict[int64, int]) error {
	c := 0
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			c += 1
			if c%10000 == 0 {
				slog.Debug(fmt.Sprintf("read %v ways", c))
			}

			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			if l < 2 {
				continue
			}
			start := nodes[0].FeatureID().Ref()
			curr := int64(0)
			e := OSMEdge{}
			for i := 0; i < l; i++ {
				curr = nodes[i].FeatureID().Ref()
				on := osm_nodes.Get(curr)
				e.Nodes.Add(on.Point)
				if on.Count > 1 && curr != start {
					e.NodeA = index_mapping.Get(start)
					e.NodeB = index_mapping.Get(curr)
					e.Type = decoder.DecodeEdge(tags)
					edges.Add(e)
					start = curr
					e = OSMEdge{}
					e.Nodes.Add(on.Point)
				}
			}
		default:
			continue
		}
	}
	return scanner.Err()
}

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	DecodeEdge(tags Dict[string, string]) attr.RoadType
}
