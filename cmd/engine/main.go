package main

import (
	"context"
	"flag"

	"github.com/skyroute-labs/skyroute/pkg/engine/routing"
	"github.com/skyroute-labs/skyroute/pkg/flightdata"
	"github.com/skyroute-labs/skyroute/pkg/http"
	"github.com/skyroute-labs/skyroute/pkg/http/usecases"
	"github.com/skyroute-labs/skyroute/pkg/logger"
	"github.com/skyroute-labs/skyroute/pkg/spatialindex"
	"github.com/skyroute-labs/skyroute/pkg/util"
	"go.uber.org/zap"
)

var (
	legsPath     = flag.String("legs", "./data/flights.csv", "path to the flight legs table (.bz2 supported)")
	useRateLimit = flag.Bool("rate_limit", false, "enable per-client rate limiting")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	loader := flightdata.NewLoader(logger)
	graph, err := loader.LoadFile(*legsPath)
	if err != nil {
		panic(err)
	}

	routingEngine := routing.NewFlightRoutingEngine(graph, logger)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, logger)

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, rtree)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, routingService)

	signal := http.GracefulShutdown()

	logger.Info("Skyroute Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
