package flight

// CabinClass is the internal four-value cabin enum. Unrecognized provider
// cabin codes always map to CabinEconomy.
type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinPremium  CabinClass = "premium"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

// TimeBucket is a departure time-of-day facet. Boundaries are fixed:
// early=[06,12), afternoon=[12,18), evening=[18,24), night=[00,06).
type TimeBucket string

const (
	BucketEarly     TimeBucket = "early"
	BucketAfternoon TimeBucket = "afternoon"
	BucketEvening   TimeBucket = "evening"
	BucketNight     TimeBucket = "night"
)

// Flight is the normalized internal representation of a provider offer.
// Instances are created fresh per search response and never mutated;
// filtering produces derived views.
type Flight struct {
	ID              string     `json:"id"`
	Airline         string     `json:"airline"`
	AirlineCode     string     `json:"airline_code"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	OriginCode      string     `json:"origin_code"`
	DestinationCode string     `json:"destination_code"`
	DepartureTime   string     `json:"departure_time"` // HH:MM, itinerary-local
	ArrivalTime     string     `json:"arrival_time"`
	Duration        float64    `json:"duration_hours"`
	Stops           int        `json:"stops"`
	StopCities      []string   `json:"stop_cities,omitempty"` // len == Stops when present
	Price           int        `json:"price"`
	Currency        string     `json:"currency"`
	Aircraft        string     `json:"aircraft"`
	FlightNumber    string     `json:"flight_number"`
	DepartureDate   string     `json:"departure_date"`
	Cabin           CabinClass `json:"cabin_class"`
}

// SearchFilters is the conjunctive facet selection. Empty lists mean no
// restriction on that dimension.
type SearchFilters struct {
	MaxPrice             int          `json:"max_price"`
	Airlines             []string     `json:"airlines"`
	MaxStops             int          `json:"max_stops"`
	MaxDuration          float64      `json:"max_duration"` // hours
	DepartureTimeBuckets []TimeBucket `json:"departure_time_buckets,omitempty"`
	CabinClasses         []CabinClass `json:"cabin_classes,omitempty"`
	DirectOnly           bool         `json:"direct_only,omitempty"`
}

// DefaultFilters matches the storefront's initial facet state.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		MaxPrice:    2000,
		Airlines:    nil,
		MaxStops:    3,
		MaxDuration: 24,
	}
}

type SearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children,omitempty"`
	Infants       int    `json:"infants,omitempty"`
	CabinClass    string `json:"cabin_class,omitempty"`
}

type FilterRequest struct {
	SearchRequest
	Filters *SearchFilters `json:"filters,omitempty"`
}

type AirlineFacet struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	MinPrice int    `json:"min_price"`
}

type PriceBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Facets struct {
	Airlines    []AirlineFacet `json:"airlines"`
	PriceBounds PriceBounds    `json:"price_bounds"`
}

type Metadata struct {
	TotalResults    int    `json:"total_results"`
	FilteredResults int    `json:"filtered_results"`
	SearchTimeMs    int64  `json:"search_time_ms,omitempty"`
	CacheHit        bool   `json:"cache_hit"`
	CacheKey        string `json:"cache_key,omitempty"`
	Source          string `json:"source"` // "amadeus" or "mock"
}

type SearchResponse struct {
	SearchCriteria SearchRequest `json:"search_criteria"`
	Metadata       Metadata      `json:"metadata"`
	Facets         Facets        `json:"facets"`
	Flights        []Flight      `json:"flights"`
}
