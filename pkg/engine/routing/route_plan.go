package routing

import (
	"github.com/skyroute-labs/skyroute/pkg/datastructure"
)

// PathScore aggregates one path's raw totals plus the combined score under a
// weight vector. Layovers are intermediate stops: len(path)-2, never negative.
type PathScore struct {
	combined    float64
	cost        float64
	timeMinutes float64
	co2Kg       float64
	layovers    int
}

func NewPathScore(combined, cost, timeMinutes, co2Kg float64, layovers int) PathScore {
	return PathScore{
		combined:    combined,
		cost:        cost,
		timeMinutes: timeMinutes,
		co2Kg:       co2Kg,
		layovers:    layovers,
	}
}

func (s PathScore) GetCombined() float64 {
	return s.combined
}

func (s PathScore) GetCost() float64 {
	return s.cost
}

func (s PathScore) GetTimeMinutes() float64 {
	return s.timeMinutes
}

func (s PathScore) GetCO2Kg() float64 {
	return s.co2Kg
}

func (s PathScore) GetLayovers() int {
	return s.layovers
}

// RoutePlan is one ranked query result: the path itself plus its score.
type RoutePlan struct {
	vertices []datastructure.Index
	codes    []string
	score    PathScore
}

func NewRoutePlan(vertices []datastructure.Index, codes []string, score PathScore) *RoutePlan {
	return &RoutePlan{
		vertices: vertices,
		codes:    codes,
		score:    score,
	}
}

func (rp *RoutePlan) GetVertices() []datastructure.Index {
	return rp.vertices
}

func (rp *RoutePlan) GetCodes() []string {
	return rp.codes
}

func (rp *RoutePlan) GetScore() PathScore {
	return rp.score
}
