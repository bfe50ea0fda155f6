package routing

import (
	"errors"
	"testing"

	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePathScenario(t *testing.T) {
	g := buildScenarioGraph()
	vec := unitVector()

	path := []da.Index{mustIndex(g, "A"), mustIndex(g, "B"), mustIndex(g, "C")}
	score, err := ScorePath(g, path, vec)
	require.NoError(t, err)

	assert.Equal(t, 150.0, score.GetCost())
	assert.Equal(t, 90.0, score.GetTimeMinutes())
	assert.Equal(t, 70.0, score.GetCO2Kg())
	assert.Equal(t, 1, score.GetLayovers())
	// 150 + 90 + 70 + 1 layover
	assert.InDelta(t, 311.0, score.GetCombined(), 1e-9)

	direct := []da.Index{mustIndex(g, "A"), mustIndex(g, "C")}
	directScore, err := ScorePath(g, direct, vec)
	require.NoError(t, err)
	assert.Equal(t, 0, directScore.GetLayovers())
	assert.InDelta(t, 330.0, directScore.GetCombined(), 1e-9)

	assert.Less(t, score.GetCombined(), directScore.GetCombined(), "the indirect path wins")
}

func TestScorePathDisconnected(t *testing.T) {
	g := buildScenarioGraph()
	// C -> A does not exist
	path := []da.Index{mustIndex(g, "C"), mustIndex(g, "A")}

	_, err := ScorePath(g, path, unitVector())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDisconnectedPath))
	assert.False(t, errors.Is(err, ErrNoPathFound), "contract violation is not a no-route outcome")
}

func TestScorePathSingleNode(t *testing.T) {
	g := buildScenarioGraph()
	score, err := ScorePath(g, []da.Index{mustIndex(g, "A")}, unitVector())
	require.NoError(t, err)
	assert.Zero(t, score.GetCombined())
	assert.Zero(t, score.GetCost())
	assert.Zero(t, score.GetLayovers())
}

func TestScorePathEmpty(t *testing.T) {
	g := buildScenarioGraph()
	_, err := ScorePath(g, nil, unitVector())
	assert.Error(t, err)
}

// round-trip: scoring a search result reproduces the totals the search
// reported, for both variants.
func TestScoreRoundTripWithSearches(t *testing.T) {
	g := buildRandomGraph(9, 20, 4)
	vec, err := costfunction.NewWeightVector(2, 3, 1, 4)
	require.NoError(t, err)
	weights := costfunction.ComputeEdgeWeights(g, vec)

	source, target := da.Index(1), da.Index(17)
	for _, router := range []Router{NewDijkstra(g, weights), NewBellmanFord(g, weights)} {
		path, dist, err := router.ShortestPath(source, target)
		if err != nil {
			t.Skip("random pair unreachable under this seed")
		}
		score, err := ScorePath(g, path, vec)
		require.NoError(t, err)

		// search weight counts one layover unit per leg, the score one per
		// intermediate stop; they differ by exactly one unit
		assert.InDelta(t, dist-vec.GetLayoverWeight(), score.GetCombined(), 1e-6)
	}
}
