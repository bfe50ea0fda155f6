package controllers

import (
	"github.com/skyroute-labs/skyroute/pkg/http/usecases"
)

type RoutingService interface {
	BestRoute(source, destination string, costW, timeW, layoverW, co2W float64,
		algorithm string) (*usecases.RankedRoute, error)
	AlternativeRoutes(source, destination string, costW, timeW, layoverW, co2W float64,
		k int) ([]*usecases.RankedRoute, error)
	NearestAirports(lat, lon, radiusKm float64) ([]usecases.NearbyAirport, error)
}
