package routing

import (
	"github.com/skyroute-labs/skyroute/pkg"
	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/util"
)

// Dijkstra runs single-pair shortest path over the flight graph with a
// query-scoped weight table. All combined weights must be non-negative,
// which holds because raw attributes and preference weights are non-negative.
//
// Ties between equal-weight paths resolve deterministically: labels improve
// only on strictly smaller distance, and adjacency is traversed in leg load
// order, so the first path discovered in that order wins.
type Dijkstra struct {
	graph   *da.FlightGraph
	weights costfunction.EdgeWeights

	// spur-search masks used by the alternative route enumerator; nil for
	// plain queries.
	bannedVertex []bool
	bannedEdge   []bool

	dist    []float64
	parent  []da.Index
	settled []bool
	heapPos []*da.PriorityQueueNode[da.Index]

	pq *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph *da.FlightGraph, weights costfunction.EdgeWeights) *Dijkstra {
	return &Dijkstra{
		graph:   graph,
		weights: weights,
		pq:      da.NewFourAryHeap[da.Index](),
	}
}

// newConstrainedDijkstra builds a spur search that ignores banned vertices
// and edges. Masks are indexed by vertex id / edge id and may be nil.
func newConstrainedDijkstra(graph *da.FlightGraph, weights costfunction.EdgeWeights,
	bannedVertex, bannedEdge []bool) *Dijkstra {
	d := NewDijkstra(graph, weights)
	d.bannedVertex = bannedVertex
	d.bannedEdge = bannedEdge
	return d
}

// ShortestPath returns the minimum combined-weight simple path from source
// to target, with its total combined edge weight. source == target yields
// the single-vertex path with weight zero.
func (us *Dijkstra) ShortestPath(source, target da.Index) ([]da.Index, float64, error) {
	if source == target {
		return []da.Index{source}, 0, nil
	}

	us.preallocate()

	sNode := da.NewPriorityQueueNode(0, source)
	us.dist[source] = 0
	us.heapPos[source] = sNode
	us.pq.Insert(sNode)

	for !us.pq.IsEmpty() {
		uNode, _ := us.pq.ExtractMin()
		u := uNode.GetItem()
		if us.settled[u] {
			continue
		}
		us.settled[u] = true
		us.numSettledNodes++

		if u == target {
			break
		}

		us.relaxOutEdges(u)
	}

	if us.dist[target] >= pkg.INF_WEIGHT {
		return nil, 0, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
			"no route from %s to %s", us.graph.AirportCode(source), us.graph.AirportCode(target))
	}

	return us.buildPath(source, target), us.dist[target], nil
}

func (us *Dijkstra) relaxOutEdges(u da.Index) {
	outEdges := us.graph.OutEdgesOf(u)
	for i := range outEdges {
		e := &outEdges[i]
		v := e.GetHead()

		if us.bannedEdge != nil && us.bannedEdge[e.GetEdgeId()] {
			continue
		}
		if us.bannedVertex != nil && us.bannedVertex[v] {
			continue
		}
		if us.settled[v] {
			continue
		}

		newDist := us.dist[u] + us.weights.GetWeight(e)
		if newDist >= us.dist[v] {
			// not strictly better, keep the earlier label
			continue
		}

		us.dist[v] = newDist
		us.parent[v] = u

		if vNode := us.heapPos[v]; vNode != nil && vNode.GetPos() >= 0 {
			us.pq.DecreaseKey(vNode, newDist)
		} else {
			vNode := da.NewPriorityQueueNode(newDist, v)
			us.heapPos[v] = vNode
			us.pq.Insert(vNode)
		}
	}
}

func (us *Dijkstra) buildPath(source, target da.Index) []da.Index {
	path := make([]da.Index, 0)
	for at := target; at != da.INVALID_INDEX; at = us.parent[at] {
		path = append(path, at)
		if at == source {
			break
		}
	}
	return util.ReverseG(path)
}

func (us *Dijkstra) preallocate() {
	n := us.graph.NumberOfAirports()
	us.dist = make([]float64, n)
	us.parent = make([]da.Index, n)
	us.settled = make([]bool, n)
	us.heapPos = make([]*da.PriorityQueueNode[da.Index], n)
	for i := 0; i < n; i++ {
		us.dist[i] = pkg.INF_WEIGHT
		us.parent[i] = da.INVALID_INDEX
	}
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}
