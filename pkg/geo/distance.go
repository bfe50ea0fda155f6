package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/skyroute-labs/skyroute/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// GreatCircleDistance. great-circle distance in km on the s2 sphere. used for
// annotating leg distances on responses, not for routing.
func GreatCircleDistance(from, to Coordinate) float64 {
	fromLL := s2.LatLngFromDegrees(from.Lat, from.Lon)
	toLL := s2.LatLngFromDegrees(to.Lat, to.Lon)
	return fromLL.Distance(toLL).Radians() * earthRadiusKM
}

// GetDestinationPoint. destination coordinate reached by travelling distanceKm
// from (lat, lon) on the given bearing (degrees). used for r-tree bounding boxes.
func GetDestinationPoint(lat, lon, bearing, distanceKm float64) (float64, float64) {
	latRad := util.DegreeToRadians(lat)
	lonRad := util.DegreeToRadians(lon)
	bearingRad := util.DegreeToRadians(bearing)
	angular := distanceKm / earthRadiusKM

	destLat := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad))
	destLon := lonRad + math.Atan2(math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(destLat))

	return util.RadiansToDegree(destLat), util.RadiansToDegree(destLon)
}
