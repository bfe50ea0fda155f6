package controllers

import (
	"github.com/skyroute-labs/skyroute/pkg/http/usecases"
)

type routeRequest struct {
	Source        string  `json:"source" validate:"required"`
	Destination   string  `json:"destination" validate:"required"`
	CostWeight    float64 `json:"cost_weight" validate:"required,min=1,max=10"`
	TimeWeight    float64 `json:"time_weight" validate:"required,min=1,max=10"`
	LayoverWeight float64 `json:"layover_weight" validate:"required,min=1,max=10"`
	CO2Weight     float64 `json:"co2_weight" validate:"required,min=1,max=10"`
}

type alternativeRoutesRequest struct {
	routeRequest
	K int64 `json:"k" validate:"required,min=1,max=20"`
}

type nearestAirportRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius_km" validate:"omitempty,gt=0"`
}

type routeResponse struct {
	Label       string   `json:"label"`
	Path        []string `json:"path"`
	Geometry    string   `json:"geometry"`
	Score       float64  `json:"score"`
	Cost        float64  `json:"cost"`
	TimeMinutes float64  `json:"time_minutes"`
	CO2Kg       float64  `json:"co2_kg"`
	Layovers    int      `json:"layovers"`
	DistanceKm  float64  `json:"distance_km"`
}

func NewRouteResponse(rr *usecases.RankedRoute) routeResponse {
	score := rr.GetScore()
	return routeResponse{
		Label:       rr.GetLabel(),
		Path:        rr.GetCodes(),
		Geometry:    rr.GetGeometry(),
		Score:       score.GetCombined(),
		Cost:        score.GetCost(),
		TimeMinutes: score.GetTimeMinutes(),
		CO2Kg:       score.GetCO2Kg(),
		Layovers:    score.GetLayovers(),
		DistanceKm:  rr.GetDistanceKm(),
	}
}

func NewRoutesResponse(rrs []*usecases.RankedRoute) []routeResponse {
	resp := make([]routeResponse, len(rrs))
	for i, rr := range rrs {
		resp[i] = NewRouteResponse(rr)
	}
	return resp
}

type nearbyAirportResponse struct {
	Code       string  `json:"code"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distance_km"`
}

func NewNearbyAirportsResponse(nas []usecases.NearbyAirport) []nearbyAirportResponse {
	resp := make([]nearbyAirportResponse, len(nas))
	for i, na := range nas {
		resp[i] = nearbyAirportResponse{
			Code:       na.GetCode(),
			Lat:        na.GetCoordinate().GetLat(),
			Lon:        na.GetCoordinate().GetLon(),
			DistanceKm: na.GetDistanceKm(),
		}
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
