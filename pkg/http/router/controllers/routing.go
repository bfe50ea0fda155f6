package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/skyroute-labs/skyroute/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.bestRoute)
	group.GET("/computeAlternativeRoutes", api.alternativeRoutes)
	group.GET("/nearestAirport", api.nearestAirport)
}

func (api *routingAPI) bestRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	request, err := parseRouteRequest(query)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	algorithm := query.Get("algorithm")
	if algorithm == "" {
		algorithm = "dijkstra"
	}

	route, err := api.routingService.BestRoute(request.Source, request.Destination,
		request.CostWeight, request.TimeWeight, request.LayoverWeight, request.CO2Weight, algorithm)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) alternativeRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	routeReq, err := parseRouteRequest(query)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	var request alternativeRoutesRequest
	request.routeRequest = *routeReq
	request.K, err = strconv.ParseInt(query.Get("k"), 10, 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("number of alternatives k is required and must be a valid int"))
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	routes, err := api.routingService.AlternativeRoutes(request.Source, request.Destination,
		request.CostWeight, request.TimeWeight, request.LayoverWeight, request.CO2Weight, int(request.K))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRoutesResponse(routes)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) nearestAirport(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestAirportRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	if raw := query.Get("radius_km"); raw != "" {
		request.RadiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("radius_km must be a valid float"))
			return
		}
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	airports, err := api.routingService.NearestAirports(request.Lat, request.Lon, request.RadiusKm)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearbyAirportsResponse(airports)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func parseRouteRequest(query url.Values) (*routeRequest, error) {
	var (
		request routeRequest
		err     error
	)

	request.Source = query.Get("source")
	request.Destination = query.Get("destination")

	request.CostWeight, err = strconv.ParseFloat(query.Get("cost_weight"), 64)
	if err != nil {
		return nil, errors.New("cost_weight is required and must be a valid float")
	}
	request.TimeWeight, err = strconv.ParseFloat(query.Get("time_weight"), 64)
	if err != nil {
		return nil, errors.New("time_weight is required and must be a valid float")
	}
	request.LayoverWeight, err = strconv.ParseFloat(query.Get("layover_weight"), 64)
	if err != nil {
		return nil, errors.New("layover_weight is required and must be a valid float")
	}
	request.CO2Weight, err = strconv.ParseFloat(query.Get("co2_weight"), 64)
	if err != nil {
		return nil, errors.New("co2_weight is required and must be a valid float")
	}
	return &request, nil
}

func (api *routingAPI) validateRequest(request interface{}) error {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}
