package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveFacetsCountsAndMinPrice(t *testing.T) {
	flights := []Flight{
		{Airline: "Emirates", Price: 900},
		{Airline: "Delta Airlines", Price: 300},
		{Airline: "Emirates", Price: 650},
		{Airline: "Delta Airlines", Price: 450},
		{Airline: "United Airlines", Price: 500},
	}

	facets := DeriveFacets(flights)

	require.Len(t, facets.Airlines, 3)

	// Sorted ascending by minimum price: cheapest airline first.
	assert.Equal(t, AirlineFacet{Name: "Delta Airlines", Count: 2, MinPrice: 300}, facets.Airlines[0])
	assert.Equal(t, AirlineFacet{Name: "United Airlines", Count: 1, MinPrice: 500}, facets.Airlines[1])
	assert.Equal(t, AirlineFacet{Name: "Emirates", Count: 2, MinPrice: 650}, facets.Airlines[2])

	assert.Equal(t, PriceBounds{Min: 300, Max: 900}, facets.PriceBounds)
}

func TestDeriveFacetsEmptySet(t *testing.T) {
	facets := DeriveFacets(nil)

	assert.Empty(t, facets.Airlines)
	assert.Equal(t, PriceBounds{Min: 0, Max: 2000}, facets.PriceBounds, "empty set keeps the slider extents usable")
}

func TestDeriveFacetsTieOrderIsDeterministic(t *testing.T) {
	flights := []Flight{
		{Airline: "B Air", Price: 400},
		{Airline: "A Air", Price: 400},
	}

	// Equal minimum prices keep first-appearance order.
	facets := DeriveFacets(flights)
	require.Len(t, facets.Airlines, 2)
	assert.Equal(t, "B Air", facets.Airlines[0].Name)
	assert.Equal(t, "A Air", facets.Airlines[1].Name)
}
