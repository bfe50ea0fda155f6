package routing

import (
	"github.com/skyroute-labs/skyroute/pkg"
	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/util"
)

// ScorePath recomputes the totals of a path from the raw leg attributes and
// applies the weight vector. Pure: independent of which search produced the
// path, and usable on externally supplied paths.
//
// The combined score counts the layover term once per intermediate stop
// (len(path)-2), while the search weight counts it once per leg
// (len(path)-1). The two differ by exactly one layover unit for every
// path between the same endpoints, so rankings agree.
func ScorePath(g *da.FlightGraph, path []da.Index, vec costfunction.WeightVector) (PathScore, error) {
	if len(path) == 0 {
		return PathScore{}, util.WrapErrorf(nil, util.ErrBadParamInput, "cannot score an empty path")
	}

	var totalCost, totalTime, totalCO2 float64
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.EdgeBetween(path[i], path[i+1])
		if !ok {
			return PathScore{}, util.WrapErrorf(ErrDisconnectedPath, util.ErrBadParamInput,
				"no leg %s -> %s", g.AirportCode(path[i]), g.AirportCode(path[i+1]))
		}
		leg := e.GetLeg()
		totalCost += leg.GetCost()
		totalTime += leg.GetTimeMinutes()
		totalCO2 += leg.GetCO2Kg()
	}

	layovers := util.Max(len(path)-2, 0)
	combined := vec.GetCostWeight()*totalCost +
		vec.GetTimeWeight()*totalTime +
		vec.GetCO2Weight()*totalCO2 +
		vec.GetLayoverWeight()*pkg.LAYOVER_UNIT*float64(layovers)

	return NewPathScore(combined, totalCost, totalTime, totalCO2, layovers), nil
}
