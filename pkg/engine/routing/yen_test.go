package routing

import (
	"testing"

	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternativeSearchScenarioOrder(t *testing.T) {
	g := buildScenarioGraph()
	weights := costfunction.ComputeEdgeWeights(g, unitVector())
	ars := NewAlternativeRouteSearch(g, weights, mustIndex(g, "A"), mustIndex(g, "C"))

	first, firstW, ok := ars.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, g.PathCodes(first))
	assert.InDelta(t, 312.0, firstW, 1e-9)

	second, secondW, ok := ars.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, g.PathCodes(second))
	assert.InDelta(t, 331.0, secondW, 1e-9)

	// only two simple paths exist
	_, _, ok = ars.Next()
	assert.False(t, ok)
	_, _, ok = ars.Next()
	assert.False(t, ok, "exhaustion is sticky")
}

func TestAlternativeSearchUnreachableIsEmpty(t *testing.T) {
	g := buildScenarioGraph()
	weights := costfunction.ComputeEdgeWeights(g, unitVector())
	ars := NewAlternativeRouteSearch(g, weights, mustIndex(g, "C"), mustIndex(g, "A"))

	_, _, ok := ars.Next()
	assert.False(t, ok)
}

func TestAlternativeSearchFirstEqualsDijkstra(t *testing.T) {
	g := buildRandomGraph(11, 25, 4)
	weights := costfunction.ComputeEdgeWeights(g, unitVector())

	source, target := da.Index(0), da.Index(19)
	dPath, dDist, dErr := NewDijkstra(g, weights).ShortestPath(source, target)
	if dErr != nil {
		t.Skip("random pair unreachable under this seed")
	}

	ars := NewAlternativeRouteSearch(g, weights, source, target)
	first, firstW, ok := ars.Next()
	require.True(t, ok)
	assert.Equal(t, g.PathCodes(dPath), g.PathCodes(first))
	assert.InDelta(t, dDist, firstW, 1e-9)
}

// the emitted sequence must be simple, duplicate-free, and non-decreasing
// in combined weight.
func TestAlternativeSearchInvariants(t *testing.T) {
	g := buildRandomGraph(5, 18, 4)
	weights := costfunction.ComputeEdgeWeights(g, unitVector())

	source, target := da.Index(0), da.Index(9)
	ars := NewAlternativeRouteSearch(g, weights, source, target)

	seen := make(map[string]bool)
	prevWeight := -1.0
	for i := 0; i < 50; i++ {
		path, weight, ok := ars.Next()
		if !ok {
			break
		}

		assert.GreaterOrEqual(t, weight, prevWeight, "weights must be non-decreasing")
		prevWeight = weight

		visited := make(map[da.Index]bool)
		for _, v := range path {
			assert.False(t, visited[v], "paths must be loopless")
			visited[v] = true
		}

		key := ""
		for _, code := range g.PathCodes(path) {
			key += code + ">"
		}
		assert.False(t, seen[key], "paths must not repeat")
		seen[key] = true

		assert.Equal(t, source, path[0])
		assert.Equal(t, target, path[len(path)-1])
	}
	assert.NotEmpty(t, seen)
}

func TestAlternativeSearchSourceEqualsTarget(t *testing.T) {
	g := buildScenarioGraph()
	weights := costfunction.ComputeEdgeWeights(g, unitVector())
	a := mustIndex(g, "A")
	ars := NewAlternativeRouteSearch(g, weights, a, a)

	path, weight, ok := ars.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, g.PathCodes(path))
	assert.Zero(t, weight)

	_, _, ok = ars.Next()
	assert.False(t, ok)
}
