package routing

import (
	"fmt"
	"math/rand"

	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/geo"
)

// scenario graph:
//
//	A -> B (cost=100, time=60, co2=50)
//	B -> C (cost=50,  time=30, co2=20)
//	A -> C (cost=200, time=50, co2=80)
//
// under weights (1,1,1,1) the indirect A-B-C route beats the direct leg.
func buildScenarioGraph() *da.FlightGraph {
	g := da.NewFlightGraph()
	g.AddLeg("A", "B", geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 1), da.NewLeg(100, 60, 50))
	g.AddLeg("B", "C", geo.NewCoordinate(1, 1), geo.NewCoordinate(2, 2), da.NewLeg(50, 30, 20))
	g.AddLeg("A", "C", geo.NewCoordinate(0, 0), geo.NewCoordinate(2, 2), da.NewLeg(200, 50, 80))
	return g
}

func unitVector() costfunction.WeightVector {
	vec, err := costfunction.NewWeightVector(1, 1, 1, 1)
	if err != nil {
		panic(err)
	}
	return vec
}

func mustIndex(g *da.FlightGraph, code string) da.Index {
	id, ok := g.AirportIndex(code)
	if !ok {
		panic("unknown airport " + code)
	}
	return id
}

// buildRandomGraph creates a reproducible sparse digraph with the given
// vertex count and roughly avgDegree out-edges per vertex.
func buildRandomGraph(seed int64, n, avgDegree int) *da.FlightGraph {
	rng := rand.New(rand.NewSource(seed))
	g := da.NewFlightGraph()

	code := func(i int) string { return fmt.Sprintf("AP%02d", i) }
	coord := func(i int) geo.Coordinate {
		return geo.NewCoordinate(float64(i%10), float64(i/10))
	}

	for i := 0; i < n; i++ {
		g.AddAirport(code(i), coord(i))
	}
	for i := 0; i < n; i++ {
		for d := 0; d < avgDegree; d++ {
			j := rng.Intn(n)
			if j == i {
				continue
			}
			g.AddLeg(code(i), code(j), coord(i), coord(j),
				da.NewLeg(10+rng.Float64()*500, 20+rng.Float64()*600, 5+rng.Float64()*300))
		}
	}
	return g
}
