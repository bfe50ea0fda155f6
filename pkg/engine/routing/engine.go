package routing

import (
	"math"

	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/util"
	"go.uber.org/zap"
)

// agreement tolerance when cross-checking the two search variants
const crossCheckEpsilon = 1e-9

// FlightRoutingEngine answers point-to-point route queries over an immutable
// flight graph. Combined weights are recomputed per query from the supplied
// weight vector, so concurrent queries never share weighting state.
type FlightRoutingEngine struct {
	graph *da.FlightGraph
	log   *zap.Logger
}

func NewFlightRoutingEngine(graph *da.FlightGraph, log *zap.Logger) *FlightRoutingEngine {
	return &FlightRoutingEngine{
		graph: graph,
		log:   log,
	}
}

func (re *FlightRoutingEngine) GetGraph() *da.FlightGraph {
	return re.graph
}

func (re *FlightRoutingEngine) resolve(code string) (da.Index, error) {
	id, ok := re.graph.AirportIndex(code)
	if !ok {
		return da.INVALID_INDEX, util.WrapErrorf(ErrUnknownAirport, util.ErrBadParamInput,
			"airport %q is not in the flight network", code)
	}
	return id, nil
}

func (re *FlightRoutingEngine) newRouter(algo Algorithm, weights costfunction.EdgeWeights) Router {
	if algo == AlgorithmBellmanFord {
		return NewBellmanFord(re.graph, weights)
	}
	return NewDijkstra(re.graph, weights)
}

// Route computes the best route under vec with the chosen algorithm and
// cross-checks the combined score against the other variant. A disagreement
// means a weighting bug, so it is logged loudly, but the primary result is
// still returned.
func (re *FlightRoutingEngine) Route(sourceCode, targetCode string, vec costfunction.WeightVector,
	algo Algorithm) (*RoutePlan, error) {
	source, err := re.resolve(sourceCode)
	if err != nil {
		return nil, err
	}
	target, err := re.resolve(targetCode)
	if err != nil {
		return nil, err
	}

	weights := costfunction.ComputeEdgeWeights(re.graph, vec)

	path, _, err := re.newRouter(algo, weights).ShortestPath(source, target)
	if err != nil {
		return nil, err
	}

	re.crossCheck(source, target, weights, algo, path)

	return re.planFromPath(path, vec)
}

func (re *FlightRoutingEngine) crossCheck(source, target da.Index, weights costfunction.EdgeWeights,
	algo Algorithm, primaryPath []da.Index) {
	other := AlgorithmBellmanFord
	if algo == AlgorithmBellmanFord {
		other = AlgorithmDijkstra
	}
	otherPath, _, err := re.newRouter(other, weights).ShortestPath(source, target)
	if err != nil {
		re.log.Error("cross-check search failed where primary succeeded",
			zap.String("algorithm", string(other)), zap.Error(err))
		return
	}
	if math.Abs(pathWeight(re.graph, weights, primaryPath)-pathWeight(re.graph, weights, otherPath)) > crossCheckEpsilon {
		re.log.Error("search variants disagree on combined weight",
			zap.Strings("primary", re.graph.PathCodes(primaryPath)),
			zap.Strings("other", re.graph.PathCodes(otherPath)))
	}
}

// AlternativeRoutes returns up to k routes in non-decreasing combined
// weight, the first being the global best. Unreachable targets yield
// ErrNoPathFound rather than an empty list.
func (re *FlightRoutingEngine) AlternativeRoutes(sourceCode, targetCode string,
	vec costfunction.WeightVector, k int) ([]*RoutePlan, error) {
	source, err := re.resolve(sourceCode)
	if err != nil {
		return nil, err
	}
	target, err := re.resolve(targetCode)
	if err != nil {
		return nil, err
	}

	weights := costfunction.ComputeEdgeWeights(re.graph, vec)
	ars := NewAlternativeRouteSearch(re.graph, weights, source, target)

	plans := make([]*RoutePlan, 0, k)
	for len(plans) < k {
		path, _, ok := ars.Next()
		if !ok {
			break
		}
		plan, err := re.planFromPath(path, vec)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if len(plans) == 0 {
		return nil, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
			"no route from %s to %s", sourceCode, targetCode)
	}
	return plans, nil
}

func (re *FlightRoutingEngine) planFromPath(path []da.Index, vec costfunction.WeightVector) (*RoutePlan, error) {
	score, err := ScorePath(re.graph, path, vec)
	if err != nil {
		return nil, err
	}
	return NewRoutePlan(path, re.graph.PathCodes(path), score), nil
}

// pathWeight sums combined edge weights along a known-connected path.
func pathWeight(g *da.FlightGraph, weights costfunction.EdgeWeights, path []da.Index) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		e, _ := g.EdgeBetween(path[i], path[i+1])
		total += weights.GetWeight(e)
	}
	return total
}
