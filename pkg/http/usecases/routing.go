package usecases

import (
	"github.com/skyroute-labs/skyroute/pkg"
	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	"github.com/skyroute-labs/skyroute/pkg/engine/routing"
	"github.com/skyroute-labs/skyroute/pkg/geo"
	"github.com/skyroute-labs/skyroute/pkg/util"
	"go.uber.org/zap"
)

const (
	LabelBest        = "Best"
	LabelAlternative = "Alternative"
)

// RankedRoute is the renderer-boundary shape: one labeled path with its
// score breakdown and an encoded polyline geometry.
type RankedRoute struct {
	label      string
	codes      []string
	geometry   string
	distanceKm float64
	score      routing.PathScore
}

func (rr *RankedRoute) GetLabel() string {
	return rr.label
}

func (rr *RankedRoute) GetCodes() []string {
	return rr.codes
}

func (rr *RankedRoute) GetGeometry() string {
	return rr.geometry
}

func (rr *RankedRoute) GetDistanceKm() float64 {
	return rr.distanceKm
}

func (rr *RankedRoute) GetScore() routing.PathScore {
	return rr.score
}

// NearbyAirport is one nearest-airport search hit.
type NearbyAirport struct {
	code       string
	coord      geo.Coordinate
	distanceKm float64
}

func (na NearbyAirport) GetCode() string {
	return na.code
}

func (na NearbyAirport) GetCoordinate() geo.Coordinate {
	return na.coord
}

func (na NearbyAirport) GetDistanceKm() float64 {
	return na.distanceKm
}

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
	}
}

// BestRoute answers a single-route query with the requested algorithm.
func (rs *RoutingService) BestRoute(source, destination string,
	costW, timeW, layoverW, co2W float64, algorithm string) (*RankedRoute, error) {
	vec, err := costfunction.NewWeightVector(costW, timeW, layoverW, co2W)
	if err != nil {
		return nil, err
	}
	algo, ok := routing.ParseAlgorithm(algorithm)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown algorithm %q", algorithm)
	}

	plan, err := rs.engine.Route(source, destination, vec, algo)
	if err != nil {
		return nil, err
	}
	return rs.rankedRoute(LabelBest, plan), nil
}

// AlternativeRoutes answers a top-k query: the best route labeled Best,
// the rest labeled Alternative, in non-decreasing combined score.
func (rs *RoutingService) AlternativeRoutes(source, destination string,
	costW, timeW, layoverW, co2W float64, k int) ([]*RankedRoute, error) {
	vec, err := costfunction.NewWeightVector(costW, timeW, layoverW, co2W)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		k = pkg.DEFAULT_ALTERNATIVES
	}
	k = util.Min(k, pkg.MAX_ALTERNATIVES)

	plans, err := rs.engine.AlternativeRoutes(source, destination, vec, k)
	if err != nil {
		return nil, err
	}

	ranked := make([]*RankedRoute, 0, len(plans))
	for i, plan := range plans {
		label := LabelAlternative
		if i == 0 {
			label = LabelBest
		}
		ranked = append(ranked, rs.rankedRoute(label, plan))
	}
	return ranked, nil
}

// NearestAirports finds airports within radiusKm of the query point,
// nearest first.
func (rs *RoutingService) NearestAirports(lat, lon, radiusKm float64) ([]NearbyAirport, error) {
	if radiusKm <= 0 {
		radiusKm = pkg.DEFAULT_NEAREST_RADIUS_KM
	}
	graph := rs.engine.GetGraph()

	entries := rs.spatialIndex.SearchWithinRadius(lat, lon, radiusKm)
	nearby := make([]NearbyAirport, 0, len(entries))
	for _, entry := range entries {
		coord := entry.GetCoordinate()
		nearby = append(nearby, NearbyAirport{
			code:       graph.AirportCode(entry.GetId()),
			coord:      coord,
			distanceKm: geo.CalculateHaversineDistance(lat, lon, coord.GetLat(), coord.GetLon()),
		})
	}
	return nearby, nil
}

func (rs *RoutingService) rankedRoute(label string, plan *routing.RoutePlan) *RankedRoute {
	graph := rs.engine.GetGraph()
	coords := graph.PathCoordinates(plan.GetVertices())

	var distKm float64
	for i := 0; i+1 < len(coords); i++ {
		distKm += geo.GreatCircleDistance(coords[i], coords[i+1])
	}

	return &RankedRoute{
		label:      label,
		codes:      plan.GetCodes(),
		geometry:   geo.PolylineFromCoords(coords),
		distanceKm: util.RoundFloat(distKm, 2),
		score:      plan.GetScore(),
	}
}
