package routing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
)

// AlternativeRouteSearch enumerates the loopless paths between two airports
// in non-decreasing combined weight, lazily (Yen's k shortest simple paths).
// The first emission equals the Dijkstra result; every later pull deviates
// from an already emitted path at each prefix, banning the prefix's leaving
// edge plus the prefix vertices to preserve simplicity, and re-running a
// constrained Dijkstra from the deviation point.
//
// The enumeration is pull-based: callers decide how many paths to take and
// Next reports exhaustion once no further simple path exists. Worst case is
// exponential in path count on dense graphs with many near-equal paths;
// flight graphs are sparse with bounded fan-out, so consumers just cap their
// pulls.
//
// Equal-weight candidates are ordered lexicographically by airport code
// sequence so enumeration order is deterministic.
type AlternativeRouteSearch struct {
	graph   *da.FlightGraph
	weights costfunction.EdgeWeights
	source  da.Index
	target  da.Index

	emitted    [][]da.Index
	candidates []*yenCandidate
	seen       map[string]bool

	started   bool
	exhausted bool
}

type yenCandidate struct {
	path   []da.Index
	weight float64
}

func NewAlternativeRouteSearch(graph *da.FlightGraph, weights costfunction.EdgeWeights,
	source, target da.Index) *AlternativeRouteSearch {
	return &AlternativeRouteSearch{
		graph:      graph,
		weights:    weights,
		source:     source,
		target:     target,
		emitted:    make([][]da.Index, 0),
		candidates: make([]*yenCandidate, 0),
		seen:       make(map[string]bool),
	}
}

// Next produces the next cheapest simple path and its combined edge weight.
// ok is false once the sequence is exhausted (including immediately, when
// the target is unreachable).
func (ars *AlternativeRouteSearch) Next() ([]da.Index, float64, bool) {
	if ars.exhausted {
		return nil, 0, false
	}

	if !ars.started {
		ars.started = true
		first := NewDijkstra(ars.graph, ars.weights)
		path, weight, err := first.ShortestPath(ars.source, ars.target)
		if err != nil {
			ars.exhausted = true
			return nil, 0, false
		}
		ars.emit(path)
		return path, weight, true
	}

	prev := ars.emitted[len(ars.emitted)-1]
	ars.addDeviationsOf(prev)

	best := ars.popBestCandidate()
	if best == nil {
		ars.exhausted = true
		return nil, 0, false
	}
	ars.emit(best.path)
	return best.path, best.weight, true
}

// addDeviationsOf generates the candidate deviations of the most recently
// emitted path and merges the unseen ones into the candidate pool.
func (ars *AlternativeRouteSearch) addDeviationsOf(prev []da.Index) {
	for i := 0; i+1 < len(prev); i++ {
		spurVertex := prev[i]
		rootPath := prev[: i+1 : i+1]

		bannedEdge := make([]bool, ars.graph.NumberOfLegs())
		for _, p := range ars.emitted {
			if len(p) > i+1 && slices.Equal(p[:i+1], rootPath) {
				if e, ok := ars.graph.EdgeBetween(p[i], p[i+1]); ok {
					bannedEdge[e.GetEdgeId()] = true
				}
			}
		}

		bannedVertex := make([]bool, ars.graph.NumberOfAirports())
		for _, v := range rootPath[:i] {
			bannedVertex[v] = true
		}

		spurSearch := newConstrainedDijkstra(ars.graph, ars.weights, bannedVertex, bannedEdge)
		spurPath, spurWeight, err := spurSearch.ShortestPath(spurVertex, ars.target)
		if err != nil {
			// no spur path under these bans, try the next prefix
			continue
		}

		fullPath := append(rootPath, spurPath[1:]...)
		key := ars.pathKey(fullPath)
		if ars.seen[key] {
			continue
		}
		ars.seen[key] = true
		ars.candidates = append(ars.candidates, &yenCandidate{
			path:   fullPath,
			weight: ars.prefixWeight(rootPath) + spurWeight,
		})
	}
}

// popBestCandidate removes and returns the cheapest candidate, breaking
// weight ties lexicographically on the airport code sequence.
func (ars *AlternativeRouteSearch) popBestCandidate() *yenCandidate {
	if len(ars.candidates) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(ars.candidates); i++ {
		if ars.candidateLess(ars.candidates[i], ars.candidates[best]) {
			best = i
		}
	}
	c := ars.candidates[best]
	ars.candidates = append(ars.candidates[:best], ars.candidates[best+1:]...)
	return c
}

func (ars *AlternativeRouteSearch) candidateLess(a, b *yenCandidate) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return slices.Compare(ars.graph.PathCodes(a.path), ars.graph.PathCodes(b.path)) < 0
}

func (ars *AlternativeRouteSearch) emit(path []da.Index) {
	ars.seen[ars.pathKey(path)] = true
	ars.emitted = append(ars.emitted, path)
}

// prefixWeight sums the combined weights along a root path. The root is a
// prefix of an already emitted path, so every leg exists.
func (ars *AlternativeRouteSearch) prefixWeight(path []da.Index) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		e, _ := ars.graph.EdgeBetween(path[i], path[i+1])
		total += ars.weights.GetWeight(e)
	}
	return total
}

func (ars *AlternativeRouteSearch) pathKey(path []da.Index) string {
	var sb strings.Builder
	for i, v := range path {
		if i > 0 {
			sb.WriteByte('>')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	return sb.String()
}
