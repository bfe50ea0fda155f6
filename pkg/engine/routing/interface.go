package routing

import (
	"errors"

	"github.com/skyroute-labs/skyroute/pkg/datastructure"
)

var (
	// ErrUnknownAirport: the requested source or destination code is not a
	// vertex of the graph.
	ErrUnknownAirport = errors.New("unknown airport code")
	// ErrNoPathFound: the destination is unreachable under the current
	// graph. A valid business outcome, not a fault.
	ErrNoPathFound = errors.New("no route found between the requested airports")
	// ErrDisconnectedPath: an externally supplied path references a leg the
	// graph does not contain. Contract violation, distinct from ErrNoPathFound.
	ErrDisconnectedPath = errors.New("path is not connected in the flight graph")
	// ErrNegativeCycle: the label-correcting search detected a negative
	// weight cycle. Cannot happen with non-negative attributes and weights.
	ErrNegativeCycle = errors.New("negative weight cycle reachable from source")
)

// Router is the single capability both search variants implement: shortest
// path between two vertices under the query's combined edge weights.
// Dijkstra requires non-negative weights; BellmanFord also admits negative
// weights, and both must agree whenever both succeed.
type Router interface {
	ShortestPath(source, target datastructure.Index) ([]datastructure.Index, float64, error)
}

type Algorithm string

const (
	AlgorithmDijkstra    Algorithm = "dijkstra"
	AlgorithmBellmanFord Algorithm = "bellman_ford"
)

func ParseAlgorithm(s string) (Algorithm, bool) {
	switch Algorithm(s) {
	case AlgorithmDijkstra, AlgorithmBellmanFord:
		return Algorithm(s), true
	}
	return "", false
}
