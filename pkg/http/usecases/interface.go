package usecases

import (
	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	"github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/engine/routing"
	"github.com/skyroute-labs/skyroute/pkg/spatialindex"
)

type RoutingEngine interface {
	GetGraph() *datastructure.FlightGraph
	Route(sourceCode, targetCode string, vec costfunction.WeightVector, algo routing.Algorithm) (*routing.RoutePlan, error)
	AlternativeRoutes(sourceCode, targetCode string, vec costfunction.WeightVector, k int) ([]*routing.RoutePlan, error)
}

type SpatialIndex interface {
	SearchWithinRadius(float64, float64, float64) []spatialindex.AirportEntry
}
