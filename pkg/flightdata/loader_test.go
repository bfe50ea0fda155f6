package flightdata

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const legsCSV = `source,dest,cost,time_minutes,co2_kg,source_lat,source_lon,dest_lat,dest_lon
DEL,BOM,4500,130,90,28.5562,77.1000,19.0896,72.8656
BOM,MAA,3800,110,75,19.0896,72.8656,12.9941,80.1709
DEL,MAA,7200,155,120,28.5562,77.1000,12.9941,80.1709
`

func TestLoadBuildsGraph(t *testing.T) {
	loader := NewLoader(zap.NewNop())
	g, err := loader.Load(strings.NewReader(legsCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumberOfAirports())
	assert.Equal(t, 3, g.NumberOfLegs())

	del, ok := g.AirportIndex("DEL")
	require.True(t, ok)
	bom, ok := g.AirportIndex("BOM")
	require.True(t, ok)

	e, ok := g.EdgeBetween(del, bom)
	require.True(t, ok)
	assert.Equal(t, 4500.0, e.GetLeg().GetCost())
	assert.Equal(t, 130.0, e.GetLeg().GetTimeMinutes())
	assert.Equal(t, 90.0, e.GetLeg().GetCO2Kg())

	assert.InDelta(t, 28.5562, g.AirportCoordinate(del).GetLat(), 1e-9)
}

func TestLoadDuplicateRowLastWriteWins(t *testing.T) {
	csv := legsCSV + "DEL,BOM,3000,120,80,28.5562,77.1000,19.0896,72.8656\n"
	loader := NewLoader(zap.NewNop())
	g, err := loader.Load(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumberOfLegs())
	del, _ := g.AirportIndex("DEL")
	bom, _ := g.AirportIndex("BOM")
	e, _ := g.EdgeBetween(del, bom)
	assert.Equal(t, 3000.0, e.GetLeg().GetCost())
}

func TestLoadRejectsNegativeAttribute(t *testing.T) {
	csv := "source,dest,cost,time_minutes,co2_kg,source_lat,source_lon,dest_lat,dest_lon\n" +
		"DEL,BOM,-10,130,90,28.5562,77.1000,19.0896,72.8656\n"
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecord))
}

func TestLoadRejectsMissingField(t *testing.T) {
	csv := "source,dest,cost,time_minutes,co2_kg,source_lat,source_lon,dest_lat,dest_lon\n" +
		"DEL,BOM,4500,130,90,28.5562\n"
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecord))
}

func TestLoadRejectsNonNumericField(t *testing.T) {
	csv := "source,dest,cost,time_minutes,co2_kg,source_lat,source_lon,dest_lat,dest_lon\n" +
		"DEL,BOM,cheap,130,90,28.5562,77.1000,19.0896,72.8656\n"
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecord))
}

func TestLoadRejectsEmptyCode(t *testing.T) {
	csv := "source,dest,cost,time_minutes,co2_kg,source_lat,source_lon,dest_lat,dest_lon\n" +
		",BOM,4500,130,90,28.5562,77.1000,19.0896,72.8656\n"
	loader := NewLoader(zap.NewNop())
	_, err := loader.Load(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRecord))
}

func TestLoadWithoutHeader(t *testing.T) {
	csv := "DEL,BOM,4500,130,90,28.5562,77.1000,19.0896,72.8656\n"
	loader := NewLoader(zap.NewNop())
	g, err := loader.Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumberOfLegs())
}
