package spatialindex

import (
	"sort"

	"github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[AirportEntry]
}

// AirportEntry is one indexed airport: the vertex id plus its coordinate,
// so radius filtering can use the exact haversine distance after the
// bounding-box search.
type AirportEntry struct {
	id    datastructure.Index
	coord geo.Coordinate
}

func (ae AirportEntry) GetId() datastructure.Index {
	return ae.id
}

func (ae AirportEntry) GetCoordinate() geo.Coordinate {
	return ae.coord
}

func newAirportEntry(id datastructure.Index, coord geo.Coordinate) AirportEntry {
	return AirportEntry{
		id:    id,
		coord: coord,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[AirportEntry]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every airport of the graph as a point entry.
func (rt *Rtree) Build(graph *datastructure.FlightGraph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	for id := datastructure.Index(0); id < datastructure.Index(graph.NumberOfAirports()); id++ {
		coord := graph.AirportCoordinate(id)
		point := [2]float64{coord.Lon, coord.Lat}
		rt.tr.Insert(point, point, newAirportEntry(id, coord))
	}
	log.Info("R-tree spatial index built.", zap.Int("airports", graph.NumberOfAirports()))
}

// SearchWithinRadius returns the airports within radius (km) of the query
// point, nearest first.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []AirportEntry {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]AirportEntry, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data AirportEntry) bool {
			if geo.CalculateHaversineDistance(qLat, qLon, data.coord.Lat, data.coord.Lon) <= radius {
				results = append(results, data)
			}
			return true
		})

	sort.Slice(results, func(i, j int) bool {
		di := geo.CalculateHaversineDistance(qLat, qLon, results[i].coord.Lat, results[i].coord.Lon)
		dj := geo.CalculateHaversineDistance(qLat, qLon, results[j].coord.Lat, results[j].coord.Lon)
		return di < dj
	})
	return results
}
