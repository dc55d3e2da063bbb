package amadeus

// Credentials is the API key/secret pair used for the client-credentials
// grant. It is only ever sent to the token endpoint.
type Credentials struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

// SearchRequest carries the flight-offer search parameters. TravelClass uses
// the internal cabin vocabulary (economy, premium, business, first) and is
// translated to the provider vocabulary when the query is built.
type SearchRequest struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string // YYYY-MM-DD
	ReturnDate              string
	Adults                  int
	Children                int
	Infants                 int
	TravelClass             string
	Max                     int
}

type SearchResponse struct {
	Meta         Meta          `json:"meta"`
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries"`
}

type Meta struct {
	Count int `json:"count"`
}

type Dictionaries struct {
	Locations  map[string]Location `json:"locations"`
	Aircraft   map[string]string   `json:"aircraft"`
	Currencies map[string]string   `json:"currencies"`
	Carriers   map[string]string   `json:"carriers"`
}

type Location struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

type FlightOffer struct {
	ID                     string            `json:"id"`
	Source                 string            `json:"source"`
	OneWay                 bool              `json:"oneWay"`
	LastTicketingDate      string            `json:"lastTicketingDate"`
	NumberOfBookableSeats  int               `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  Price             `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings"`
}

type Itinerary struct {
	Duration string    `json:"duration"` // ISO 8601, e.g. PT2H30M
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure     Endpoint   `json:"departure"`
	Arrival       Endpoint   `json:"arrival"`
	CarrierCode   string     `json:"carrierCode"`
	Number        string     `json:"number"`
	Aircraft      Aircraft   `json:"aircraft"`
	Operating     *Operating `json:"operating,omitempty"`
	Duration      string     `json:"duration"`
	ID            string     `json:"id"`
	NumberOfStops int        `json:"numberOfStops"`
}

type Endpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"` // local timestamp, no timezone conversion applied
}

type Aircraft struct {
	Code string `json:"code"`
}

type Operating struct {
	CarrierCode string `json:"carrierCode"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	Fees       []Fee  `json:"fees,omitempty"`
	GrandTotal string `json:"grandTotal"`
}

type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

type TravelerPricing struct {
	TravelerID           string       `json:"travelerId"`
	FareOption           string       `json:"fareOption"`
	TravelerType         string       `json:"travelerType"`
	Price                Price        `json:"price"`
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type FareDetail struct {
	SegmentID           string      `json:"segmentId"`
	Cabin               string      `json:"cabin"`
	FareBasis           string      `json:"fareBasis"`
	Class               string      `json:"class"`
	IncludedCheckedBags CheckedBags `json:"includedCheckedBags"`
}

type CheckedBags struct {
	Quantity int `json:"quantity"`
}
