package routing

import (
	"github.com/skyroute-labs/skyroute/pkg"
	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/util"
)

// BellmanFord is the label-correcting counterpart of Dijkstra. Functionally
// equivalent for the non-negative weights used here; kept as a
// cross-validation oracle and as the variant that stays correct if negative
// combined weights (e.g. subsidised legs) are introduced later.
//
// Determinism follows the same rule as Dijkstra: labels improve only on
// strictly smaller distance and edges relax in a fixed load order.
type BellmanFord struct {
	graph   *da.FlightGraph
	weights costfunction.EdgeWeights

	dist   []float64
	parent []da.Index
}

func NewBellmanFord(graph *da.FlightGraph, weights costfunction.EdgeWeights) *BellmanFord {
	return &BellmanFord{
		graph:   graph,
		weights: weights,
	}
}

// ShortestPath relaxes all edges up to |V|-1 rounds with early exit once the
// labels are stable. A further improving round means a negative cycle.
func (bf *BellmanFord) ShortestPath(source, target da.Index) ([]da.Index, float64, error) {
	if source == target {
		return []da.Index{source}, 0, nil
	}

	bf.preallocate()
	bf.dist[source] = 0

	n := bf.graph.NumberOfAirports()
	for round := 0; round < n-1; round++ {
		if !bf.relaxAllEdges() {
			break
		}
	}
	if bf.relaxAllEdges() {
		return nil, 0, util.WrapErrorf(ErrNegativeCycle, util.ErrBadParamInput,
			"negative weight cycle reachable from %s", bf.graph.AirportCode(source))
	}

	if bf.dist[target] >= pkg.INF_WEIGHT {
		return nil, 0, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
			"no route from %s to %s", bf.graph.AirportCode(source), bf.graph.AirportCode(target))
	}

	return bf.buildPath(source, target), bf.dist[target], nil
}

// relaxAllEdges performs one relaxation round and reports whether any label
// improved.
func (bf *BellmanFord) relaxAllEdges() bool {
	improved := false
	bf.graph.ForLegs(func(edgeId, tail, head da.Index, leg da.Leg) {
		if bf.dist[tail] >= pkg.INF_WEIGHT {
			return
		}
		newDist := bf.dist[tail] + bf.weights[edgeId]
		if newDist < bf.dist[head] {
			bf.dist[head] = newDist
			bf.parent[head] = tail
			improved = true
		}
	})
	return improved
}

func (bf *BellmanFord) buildPath(source, target da.Index) []da.Index {
	path := make([]da.Index, 0)
	for at := target; at != da.INVALID_INDEX; at = bf.parent[at] {
		path = append(path, at)
		if at == source {
			break
		}
	}
	return util.ReverseG(path)
}

func (bf *BellmanFord) preallocate() {
	n := bf.graph.NumberOfAirports()
	bf.dist = make([]float64, n)
	bf.parent = make([]da.Index, n)
	for i := 0; i < n; i++ {
		bf.dist[i] = pkg.INF_WEIGHT
		bf.parent[i] = da.INVALID_INDEX
	}
}
