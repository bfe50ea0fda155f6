package datastructure

import (
	"math"

	"github.com/skyroute-labs/skyroute/pkg/geo"
)

type Index uint32

const INVALID_INDEX Index = Index(math.MaxUint32)

// Leg holds the raw attributes of one directed flight segment. Attributes are
// never mutated after load; query-dependent combined weights live outside the
// graph (see costfunction.EdgeWeights).
type Leg struct {
	cost        float64
	timeMinutes float64
	co2Kg       float64
}

func NewLeg(cost, timeMinutes, co2Kg float64) Leg {
	return Leg{
		cost:        cost,
		timeMinutes: timeMinutes,
		co2Kg:       co2Kg,
	}
}

func (l Leg) GetCost() float64 {
	return l.cost
}

func (l Leg) GetTimeMinutes() float64 {
	return l.timeMinutes
}

func (l Leg) GetCO2Kg() float64 {
	return l.co2Kg
}

// OutEdge is one entry of a vertex's out-adjacency.
type OutEdge struct {
	edgeId Index
	head   Index
	leg    Leg
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetLeg() Leg {
	return e.leg
}

type edgePair struct {
	tail Index
	head Index
}

// FlightGraph is a plain directed graph of airports and legs. It is built
// once by the loader and read-only afterwards, so concurrent queries may
// share it without locking. At most one leg exists per ordered airport pair:
// when the input carries duplicate (origin, destination) rows the later row
// overwrites the earlier one.
type FlightGraph struct {
	codes     []string
	codeIndex map[string]Index
	coords    []geo.Coordinate

	outEdges [][]OutEdge
	edges    []edgePair
	edgePos  map[edgePair]Index
}

func NewFlightGraph() *FlightGraph {
	return &FlightGraph{
		codes:     make([]string, 0),
		codeIndex: make(map[string]Index),
		coords:    make([]geo.Coordinate, 0),
		outEdges:  make([][]OutEdge, 0),
		edges:     make([]edgePair, 0),
		edgePos:   make(map[edgePair]Index),
	}
}

// AddAirport registers an airport code with its coordinate and returns its
// dense vertex index. Re-adding an existing code updates the coordinate.
func (g *FlightGraph) AddAirport(code string, coord geo.Coordinate) Index {
	if id, ok := g.codeIndex[code]; ok {
		g.coords[id] = coord
		return id
	}
	id := Index(len(g.codes))
	g.codes = append(g.codes, code)
	g.coords = append(g.coords, coord)
	g.outEdges = append(g.outEdges, nil)
	g.codeIndex[code] = id
	return id
}

// AddLeg inserts the directed leg origin->destination. A later leg for the
// same ordered pair replaces the earlier one in place, keeping the adjacency
// order (and therefore traversal order) of the first insertion.
func (g *FlightGraph) AddLeg(origin, destination string, originCoord, destinationCoord geo.Coordinate, leg Leg) {
	tail := g.AddAirport(origin, originCoord)
	head := g.AddAirport(destination, destinationCoord)

	pair := edgePair{tail: tail, head: head}
	if edgeId, ok := g.edgePos[pair]; ok {
		for i := range g.outEdges[tail] {
			if g.outEdges[tail][i].edgeId == edgeId {
				g.outEdges[tail][i].leg = leg
				break
			}
		}
		return
	}

	edgeId := Index(len(g.edges))
	g.edges = append(g.edges, pair)
	g.edgePos[pair] = edgeId
	g.outEdges[tail] = append(g.outEdges[tail], OutEdge{edgeId: edgeId, head: head, leg: leg})
}

func (g *FlightGraph) NumberOfAirports() int {
	return len(g.codes)
}

func (g *FlightGraph) NumberOfLegs() int {
	return len(g.edges)
}

func (g *FlightGraph) AirportIndex(code string) (Index, bool) {
	id, ok := g.codeIndex[code]
	return id, ok
}

func (g *FlightGraph) AirportCode(id Index) string {
	return g.codes[id]
}

func (g *FlightGraph) AirportCoordinate(id Index) geo.Coordinate {
	return g.coords[id]
}

// OutEdgesOf returns the out-adjacency of u in load order. Callers must not
// mutate the returned slice.
func (g *FlightGraph) OutEdgesOf(u Index) []OutEdge {
	return g.outEdges[u]
}

// EdgeBetween looks up the single leg u->v, if any.
func (g *FlightGraph) EdgeBetween(u, v Index) (*OutEdge, bool) {
	edgeId, ok := g.edgePos[edgePair{tail: u, head: v}]
	if !ok {
		return nil, false
	}
	for i := range g.outEdges[u] {
		if g.outEdges[u][i].edgeId == edgeId {
			return &g.outEdges[u][i], true
		}
	}
	return nil, false
}

// ForLegs iterates every leg of the graph once, grouped by origin vertex in
// load order.
func (g *FlightGraph) ForLegs(fn func(edgeId, tail, head Index, leg Leg)) {
	for u := range g.outEdges {
		for i := range g.outEdges[u] {
			e := &g.outEdges[u][i]
			fn(e.edgeId, Index(u), e.head, e.leg)
		}
	}
}

// PathCoordinates maps a vertex path to its coordinate sequence.
func (g *FlightGraph) PathCoordinates(path []Index) []geo.Coordinate {
	coords := make([]geo.Coordinate, len(path))
	for i, v := range path {
		coords[i] = g.coords[v]
	}
	return coords
}

// PathCodes maps a vertex path to airport codes.
func (g *FlightGraph) PathCodes(path []Index) []string {
	codes := make([]string, len(path))
	for i, v := range path {
		codes[i] = g.codes[v]
	}
	return codes
}

// AirportCodes returns every known code in index order.
func (g *FlightGraph) AirportCodes() []string {
	codes := make([]string, len(g.codes))
	copy(codes, g.codes)
	return codes
}
