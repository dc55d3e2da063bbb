package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFlightsInvariants(t *testing.T) {
	g := NewGenerator(42)
	req := SearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-09-15", Adults: 1}

	flights := g.GenerateFlights(req)

	require.GreaterOrEqual(t, len(flights), 15)
	require.LessOrEqual(t, len(flights), 25)

	for i, f := range flights {
		assert.NotEmpty(t, f.ID)
		assert.NotEmpty(t, f.Airline)
		assert.Equal(t, "JFK", f.OriginCode)
		assert.Equal(t, "LHR", f.DestinationCode)
		assert.Equal(t, "New York", f.Origin, "known codes resolve to city names")
		assert.Equal(t, "London", f.Destination)
		assert.Equal(t, "2026-09-15", f.DepartureDate)
		assert.Positive(t, f.Price)
		assert.GreaterOrEqual(t, f.Stops, 0)
		assert.LessOrEqual(t, f.Stops, 3)
		assert.Len(t, f.StopCities, f.Stops)
		assert.Regexp(t, `^\d{2}:\d{2}$`, f.DepartureTime)

		if i > 0 {
			assert.GreaterOrEqual(t, f.Price, flights[i-1].Price, "sorted ascending by price")
		}
	}
}

func TestGenerateFlightsUnknownAirportFallsBackToCode(t *testing.T) {
	g := NewGenerator(1)
	flights := g.GenerateFlights(SearchRequest{Origin: "XXX", Destination: "YYY", Adults: 1})

	require.NotEmpty(t, flights)
	assert.Equal(t, "XXX", flights[0].Origin)
	assert.Equal(t, "YYY", flights[0].Destination)
}

func TestGenerateFlightsDeterministicForSeed(t *testing.T) {
	req := SearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-09-15", Adults: 1}

	a := NewGenerator(7).GenerateFlights(req)
	b := NewGenerator(7).GenerateFlights(req)

	assert.Equal(t, a, b)
}
