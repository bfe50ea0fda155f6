package routing

import (
	"errors"
	"math"
	"testing"

	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellmanFordMatchesScenario(t *testing.T) {
	g := buildScenarioGraph()
	weights := costfunction.ComputeEdgeWeights(g, unitVector())

	path, dist, err := NewBellmanFord(g, weights).ShortestPath(mustIndex(g, "A"), mustIndex(g, "C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.PathCodes(path))
	assert.InDelta(t, 312.0, dist, 1e-9)
}

func TestBellmanFordUnreachable(t *testing.T) {
	g := buildScenarioGraph()
	weights := costfunction.ComputeEdgeWeights(g, unitVector())

	_, _, err := NewBellmanFord(g, weights).ShortestPath(mustIndex(g, "C"), mustIndex(g, "A"))
	assert.True(t, errors.Is(err, ErrNoPathFound))
}

// cross-validation invariant: for all-positive weight vectors on random
// graphs, both variants report the same combined weight for every
// reachable pair.
func TestDijkstraAndBellmanFordAgree(t *testing.T) {
	vectors := []costfunction.WeightVector{}
	for _, ws := range [][4]float64{{1, 1, 1, 1}, {5, 1, 10, 2}, {0.5, 8, 3, 0.1}} {
		vec, err := costfunction.NewWeightVector(ws[0], ws[1], ws[2], ws[3])
		require.NoError(t, err)
		vectors = append(vectors, vec)
	}

	for _, seed := range []int64{1, 2, 3} {
		g := buildRandomGraph(seed, 30, 4)
		for _, vec := range vectors {
			weights := costfunction.ComputeEdgeWeights(g, vec)
			for s := da.Index(0); s < 10; s++ {
				for tgt := da.Index(0); tgt < da.Index(g.NumberOfAirports()); tgt++ {
					dPath, dDist, dErr := NewDijkstra(g, weights).ShortestPath(s, tgt)
					bPath, bDist, bErr := NewBellmanFord(g, weights).ShortestPath(s, tgt)

					if dErr != nil {
						assert.True(t, errors.Is(bErr, ErrNoPathFound) == errors.Is(dErr, ErrNoPathFound))
						continue
					}
					require.NoError(t, bErr)
					assert.InDelta(t, dDist, bDist, 1e-6,
						"disagreement for %s -> %s: %v vs %v",
						g.AirportCode(s), g.AirportCode(tgt), g.PathCodes(dPath), g.PathCodes(bPath))
				}
			}
		}
	}
}

func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	g := da.NewFlightGraph()
	g.AddLeg("A", "B", geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 1), da.NewLeg(1, 1, 1))
	g.AddLeg("B", "A", geo.NewCoordinate(1, 1), geo.NewCoordinate(0, 0), da.NewLeg(1, 1, 1))
	g.AddLeg("B", "C", geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2), da.NewLeg(1, 1, 1))

	// hand-built weight table modelling subsidised legs; cannot arise from
	// a non-negative vector but the variant must stay correct if it does
	weights := make(costfunction.EdgeWeights, g.NumberOfLegs())
	g.ForLegs(func(edgeId, tail, head da.Index, leg da.Leg) {
		weights[edgeId] = -1
	})

	_, _, err := NewBellmanFord(g, weights).ShortestPath(mustIndex(g, "A"), mustIndex(g, "C"))
	assert.True(t, errors.Is(err, ErrNegativeCycle))
}

func TestBellmanFordNegativeEdgeNoCycle(t *testing.T) {
	g := da.NewFlightGraph()
	g.AddLeg("A", "B", geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 1), da.NewLeg(1, 1, 1))
	g.AddLeg("B", "C", geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2), da.NewLeg(1, 1, 1))
	g.AddLeg("A", "C", geo.NewCoordinate(0, 0), geo.NewCoordinate(2, 2), da.NewLeg(1, 1, 1))

	weights := make(costfunction.EdgeWeights, g.NumberOfLegs())
	ab, _ := g.EdgeBetween(mustIndex(g, "A"), mustIndex(g, "B"))
	bc, _ := g.EdgeBetween(mustIndex(g, "B"), mustIndex(g, "C"))
	ac, _ := g.EdgeBetween(mustIndex(g, "A"), mustIndex(g, "C"))
	weights[ab.GetEdgeId()] = 5
	weights[bc.GetEdgeId()] = -4
	weights[ac.GetEdgeId()] = 2

	path, dist, err := NewBellmanFord(g, weights).ShortestPath(mustIndex(g, "A"), mustIndex(g, "C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.PathCodes(path))
	assert.True(t, math.Abs(dist-1.0) < 1e-9)
}
