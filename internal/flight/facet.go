package flight

import "sort"

// sentinel slider extents used when there is nothing to derive bounds from
const (
	emptyPriceMin = 0
	emptyPriceMax = 2000
)

// DeriveFacets computes the filterable dimensions of an unfiltered result
// set: per-airline count and minimum price, sorted ascending by minimum
// price (cheapest airline first — a user-facing contract), plus overall
// price bounds.
func DeriveFacets(flights []Flight) Facets {
	if len(flights) == 0 {
		return Facets{
			Airlines:    []AirlineFacet{},
			PriceBounds: PriceBounds{Min: emptyPriceMin, Max: emptyPriceMax},
		}
	}

	byAirline := make(map[string]int) // airline name -> index into facets
	facets := make([]AirlineFacet, 0)

	bounds := PriceBounds{Min: flights[0].Price, Max: flights[0].Price}

	for _, f := range flights {
		if f.Price < bounds.Min {
			bounds.Min = f.Price
		}
		if f.Price > bounds.Max {
			bounds.Max = f.Price
		}

		idx, seen := byAirline[f.Airline]
		if !seen {
			byAirline[f.Airline] = len(facets)
			facets = append(facets, AirlineFacet{Name: f.Airline, Count: 1, MinPrice: f.Price})
			continue
		}

		facets[idx].Count++
		if f.Price < facets[idx].MinPrice {
			facets[idx].MinPrice = f.Price
		}
	}

	sort.SliceStable(facets, func(i, j int) bool {
		return facets[i].MinPrice < facets[j].MinPrice
	})

	return Facets{Airlines: facets, PriceBounds: bounds}
}
