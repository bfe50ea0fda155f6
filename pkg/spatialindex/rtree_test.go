package spatialindex

import (
	"testing"

	"github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildIndiaGraph() *datastructure.FlightGraph {
	g := datastructure.NewFlightGraph()
	g.AddAirport("DEL", geo.NewCoordinate(28.5562, 77.1000))
	g.AddAirport("BOM", geo.NewCoordinate(19.0896, 72.8656))
	g.AddAirport("MAA", geo.NewCoordinate(12.9941, 80.1709))
	g.AddAirport("BLR", geo.NewCoordinate(13.1986, 77.7066))
	return g
}

func TestSearchWithinRadius(t *testing.T) {
	g := buildIndiaGraph()
	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	// query near Bangalore city centre
	results := rt.SearchWithinRadius(12.9716, 77.5946, 100)
	require.Len(t, results, 1)
	blr, _ := g.AirportIndex("BLR")
	assert.Equal(t, blr, results[0].GetId())
}

func TestSearchWithinRadiusNearestFirst(t *testing.T) {
	g := buildIndiaGraph()
	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	// wide enough to catch BLR and MAA, with BLR far closer
	results := rt.SearchWithinRadius(12.9716, 77.5946, 400)
	require.Len(t, results, 2)
	blr, _ := g.AirportIndex("BLR")
	maa, _ := g.AirportIndex("MAA")
	assert.Equal(t, blr, results[0].GetId())
	assert.Equal(t, maa, results[1].GetId())
}

func TestSearchWithinRadiusEmpty(t *testing.T) {
	g := buildIndiaGraph()
	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	results := rt.SearchWithinRadius(-6.2, 106.8, 50)
	assert.Empty(t, results)
}

func TestSearchExactDistanceFilter(t *testing.T) {
	g := buildIndiaGraph()
	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	// DEL is ~10km from this point; a 5km radius must exclude it even though
	// the bounding box may cover it
	del, _ := g.AirportIndex("DEL")
	coord := g.AirportCoordinate(del)
	d := geo.CalculateHaversineDistance(28.61, 77.20, coord.Lat, coord.Lon)
	require.Greater(t, d, 5.0)

	results := rt.SearchWithinRadius(28.61, 77.20, 5)
	assert.Empty(t, results)
}
