package flightdata

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/go-playground/validator/v10"
	"github.com/skyroute-labs/skyroute/pkg/datastructure"
	"github.com/skyroute-labs/skyroute/pkg/geo"
	"github.com/skyroute-labs/skyroute/pkg/util"
	"go.uber.org/zap"
)

// ErrInvalidRecord: a leg record is malformed, incomplete, or carries a
// negative attribute. The whole load fails; no partial graph is kept.
var ErrInvalidRecord = errors.New("invalid flight leg record")

// LegRecord is one row of the route data provider's leg table.
type LegRecord struct {
	Origin         string  `validate:"required"`
	Destination    string  `validate:"required"`
	Cost           float64 `validate:"gte=0"`
	TimeMinutes    float64 `validate:"gte=0"`
	CO2Kg          float64 `validate:"gte=0"`
	OriginLat      float64 `validate:"gte=-90,lte=90"`
	OriginLon      float64 `validate:"gte=-180,lte=180"`
	DestinationLat float64 `validate:"gte=-90,lte=90"`
	DestinationLon float64 `validate:"gte=-180,lte=180"`
}

const legRecordFields = 9

// Loader builds the immutable flight graph from a leg table. The table is
// read once per session; the resulting graph is never mutated afterwards.
type Loader struct {
	log      *zap.Logger
	validate *validator.Validate
}

func NewLoader(log *zap.Logger) *Loader {
	return &Loader{
		log:      log,
		validate: validator.New(),
	}
}

// LoadFile reads a leg table from disk. Files with a .bz2 suffix are
// decompressed on the fly.
func (l *Loader) LoadFile(path string) (*datastructure.FlightGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}
	return l.Load(r)
}

// Load parses CSV leg records (original flights.csv column layout:
// source,dest,cost,time_minutes,co2_kg,source_lat,source_lon,dest_lat,
// dest_lon) and builds the graph. Duplicate ordered (origin, destination)
// pairs are resolved last-write-wins.
func (l *Loader) Load(r io.Reader) (*datastructure.FlightGraph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = legRecordFields
	cr.TrimLeadingSpace = true

	graph := datastructure.NewFlightGraph()
	row := 0
	duplicates := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, util.WrapErrorf(ErrInvalidRecord, util.ErrBadParamInput,
				"row %d: %v", row+1, err)
		}
		row++
		if row == 1 && isHeaderRow(fields) {
			continue
		}

		rec, err := parseRecord(fields)
		if err != nil {
			return nil, util.WrapErrorf(ErrInvalidRecord, util.ErrBadParamInput,
				"row %d: %v", row, err)
		}
		if err := l.validate.Struct(rec); err != nil {
			return nil, util.WrapErrorf(ErrInvalidRecord, util.ErrBadParamInput,
				"row %d: %v", row, err)
		}

		if src, ok := graph.AirportIndex(rec.Origin); ok {
			if dst, ok := graph.AirportIndex(rec.Destination); ok {
				if _, dup := graph.EdgeBetween(src, dst); dup {
					duplicates++
				}
			}
		}
		graph.AddLeg(rec.Origin, rec.Destination,
			geo.NewCoordinate(rec.OriginLat, rec.OriginLon),
			geo.NewCoordinate(rec.DestinationLat, rec.DestinationLon),
			datastructure.NewLeg(rec.Cost, rec.TimeMinutes, rec.CO2Kg))
	}

	if duplicates > 0 {
		l.log.Warn("duplicate legs in input, later rows overwrote earlier ones",
			zap.Int("duplicates", duplicates))
	}
	l.log.Info("flight graph loaded",
		zap.Int("airports", graph.NumberOfAirports()),
		zap.Int("legs", graph.NumberOfLegs()))
	return graph, nil
}

func isHeaderRow(fields []string) bool {
	return strings.EqualFold(fields[0], "source") || strings.EqualFold(fields[0], "origin")
}

func parseRecord(fields []string) (*LegRecord, error) {
	numeric := make([]float64, 0, legRecordFields-2)
	for _, raw := range fields[2:] {
		v, err := util.StringToFloat64(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		numeric = append(numeric, v)
	}
	return &LegRecord{
		Origin:         strings.TrimSpace(fields[0]),
		Destination:    strings.TrimSpace(fields[1]),
		Cost:           numeric[0],
		TimeMinutes:    numeric[1],
		CO2Kg:          numeric[2],
		OriginLat:      numeric[3],
		OriginLon:      numeric[4],
		DestinationLat: numeric[5],
		DestinationLon: numeric[6],
	}, nil
}
