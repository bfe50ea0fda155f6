package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"github.com/skyroute-labs/skyroute/pkg/concurrent"
	"github.com/skyroute-labs/skyroute/pkg/costfunction"
	da "github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/engine/routing"
	"github.com/skyroute-labs/skyroute/pkg/flightdata"
	log "github.com/skyroute-labs/skyroute/pkg/logger"
	"go.uber.org/zap"
)

var (
	legsPath   = flag.String("legs", "./data/flights.csv", "path to the flight legs table")
	numQueries = flag.Int("n", 100000, "number of random queries")
	numWorkers = flag.Int("workers", 8, "concurrent workers")
	seed       = flag.Int64("seed", 42, "rng seed")
)

type query struct {
	source da.Index
	target da.Index
	vec    costfunction.WeightVector
}

type verdict struct {
	q        query
	mismatch bool
	detail   string
}

/*
stress driver: fires random (source, target, weight vector) queries at one
shared graph from many goroutines. each query computes its own EdgeWeights
table, so this doubles as a race check on the per-query weighting design:
if combined weights ever leaked onto shared state, dijkstra and bellman-ford
would start disagreeing under load. stops at the first counterexample.
*/
func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	graph, err := flightdata.NewLoader(logger).LoadFile(*legsPath)
	if err != nil {
		panic(err)
	}
	n := graph.NumberOfAirports()
	if n < 2 {
		panic("graph too small for stress queries")
	}

	rng := rand.New(rand.NewSource(*seed))
	queries := make([]query, *numQueries)
	for i := range queries {
		vec, _ := costfunction.NewWeightVector(
			1+rng.Float64()*9, 1+rng.Float64()*9, 1+rng.Float64()*9, 1+rng.Float64()*9)
		queries[i] = query{
			source: da.Index(rng.Intn(n)),
			target: da.Index(rng.Intn(n)),
			vec:    vec,
		}
	}

	pool := concurrent.NewWorkerPool[query, verdict](*numWorkers, *numQueries)
	pool.Start(func(q query) verdict {
		weights := costfunction.ComputeEdgeWeights(graph, q.vec)

		dPath, dDist, dErr := routing.NewDijkstra(graph, weights).ShortestPath(q.source, q.target)
		bPath, bDist, bErr := routing.NewBellmanFord(graph, weights).ShortestPath(q.source, q.target)

		if (dErr == nil) != (bErr == nil) {
			return verdict{q: q, mismatch: true,
				detail: fmt.Sprintf("reachability disagreement: dijkstra err=%v bellman-ford err=%v", dErr, bErr)}
		}
		if dErr != nil {
			return verdict{q: q}
		}
		if math.Abs(dDist-bDist) > 1e-6 {
			return verdict{q: q, mismatch: true,
				detail: fmt.Sprintf("weight disagreement: dijkstra %v via %v, bellman-ford %v via %v",
					dDist, graph.PathCodes(dPath), bDist, graph.PathCodes(bPath))}
		}
		return verdict{q: q}
	})

	go func() {
		for _, q := range queries {
			pool.AddJob(q)
		}
		pool.Close()
	}()

	done := make(chan struct{})
	go func() {
		pool.Wait()
		close(done)
	}()

	checked := 0
	for v := range pool.CollectResults() {
		checked++
		if v.mismatch {
			logger.Fatal("counterexample found",
				zap.String("source", graph.AirportCode(v.q.source)),
				zap.String("target", graph.AirportCode(v.q.target)),
				zap.String("detail", v.detail))
		}
		if checked%10000 == 0 {
			logger.Info("progress", zap.Int("checked", checked))
		}
	}
	<-done

	logger.Info("stress test passed", zap.Int("queries", checked))
}
