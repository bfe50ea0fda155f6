package costfunction

import (
	"math"

	"github.com/skyroute-labs/skyroute/pkg"
	"github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/util"
)

// CostFunction maps a leg's raw attributes to one scalar edge weight.
type CostFunction interface {
	GetWeight(leg datastructure.Leg) float64
}

// WeightVector holds the per-query importance weights for the four cost
// criteria. The vector is passed explicitly to every weighting and scoring
// call; nothing keeps a "current weights" session state.
type WeightVector struct {
	cost    float64
	time    float64
	layover float64
	co2     float64
}

func NewWeightVector(cost, time, layover, co2 float64) (WeightVector, error) {
	for _, w := range []float64{cost, time, layover, co2} {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return WeightVector{}, util.WrapErrorf(nil, util.ErrBadParamInput,
				"preference weights must be finite and non-negative, got %v", w)
		}
	}
	return WeightVector{cost: cost, time: time, layover: layover, co2: co2}, nil
}

func (v WeightVector) GetCostWeight() float64 {
	return v.cost
}

func (v WeightVector) GetTimeWeight() float64 {
	return v.time
}

func (v WeightVector) GetLayoverWeight() float64 {
	return v.layover
}

func (v WeightVector) GetCO2Weight() float64 {
	return v.co2
}

// GetWeight implements CostFunction. Each traversed leg contributes one
// layover unit, so the layover term is layover_w * 1 per edge.
func (v WeightVector) GetWeight(leg datastructure.Leg) float64 {
	return v.cost*leg.GetCost() +
		v.time*leg.GetTimeMinutes() +
		v.co2*leg.GetCO2Kg() +
		v.layover*pkg.LAYOVER_UNIT
}

// EdgeWeights is a query-scoped combined-weight table indexed by edge id.
// Weights are computed fresh per query and never written back to the shared
// graph, so concurrent queries with different vectors cannot observe each
// other's weights.
type EdgeWeights []float64

func (w EdgeWeights) GetWeight(e *datastructure.OutEdge) float64 {
	return w[e.GetEdgeId()]
}

// ComputeEdgeWeights derives the combined weight of every edge under cf.
// O(E); an empty graph yields an empty table.
func ComputeEdgeWeights(g *datastructure.FlightGraph, cf CostFunction) EdgeWeights {
	weights := make(EdgeWeights, g.NumberOfLegs())
	g.ForLegs(func(edgeId, tail, head datastructure.Index, leg datastructure.Leg) {
		weights[edgeId] = cf.GetWeight(leg)
	})
	return weights
}
