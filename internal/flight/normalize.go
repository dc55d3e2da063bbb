package flight

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jetset/pkg/amadeus"
)

// airlineNames is the static fallback used when a carrier code is missing
// from the provider's dictionary. A code absent from both resolves to itself.
var airlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Airlines",
	"UA": "United Airlines",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"AF": "Air France",
	"KL": "KLM",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"TK": "Turkish Airlines",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"JL": "Japan Airlines",
	"NH": "ANA",
	"AC": "Air Canada",
}

// cityNames maps well-known IATA codes to display city names. Unknown codes
// fall back to the raw code.
var cityNames = map[string]string{
	"JFK": "New York",
	"LAX": "Los Angeles",
	"LHR": "London",
	"CDG": "Paris",
	"DXB": "Dubai",
	"NRT": "Tokyo",
	"SYD": "Sydney",
	"SIN": "Singapore",
	"FRA": "Frankfurt",
	"AMS": "Amsterdam",
	"BOM": "Mumbai",
	"DEL": "Delhi",
	"BLR": "Bangalore",
	"MAA": "Chennai",
	"CCU": "Kolkata",
	"HYD": "Hyderabad",
}

var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseISODuration converts an ISO 8601 duration token like "PT2H30M" into
// fractional hours. A token lacking both components parses to 0.
func ParseISODuration(token string) float64 {
	match := isoDurationPattern.FindStringSubmatch(token)
	if match == nil {
		return 0
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	return float64(hours) + float64(minutes)/60
}

// mapCabin folds a provider cabin string into the internal enum. Anything
// unrecognized is economy.
func mapCabin(cabin string) CabinClass {
	switch strings.ToLower(cabin) {
	case "first":
		return CabinFirst
	case "business":
		return CabinBusiness
	case "premium_economy":
		return CabinPremium
	default:
		return CabinEconomy
	}
}

// timeOfDay extracts a zero-padded HH:MM from the provider's local timestamp.
// No timezone conversion is performed; the timestamp is taken at face value.
func timeOfDay(ts string) string {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("15:04")
		}
	}
	// Last resort: slice the HH:MM straight out of an ISO-shaped string.
	if len(ts) >= 16 && ts[10] == 'T' {
		return ts[11:16]
	}
	return ""
}

// datePart strips the time component off an ISO timestamp.
func datePart(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func cityName(code string) string {
	if name, ok := cityNames[code]; ok {
		return name
	}
	return code
}

func roundPrice(total string) int {
	value, err := strconv.ParseFloat(total, 64)
	if err != nil {
		return 0
	}
	return int(math.Round(value))
}

// Normalize maps a provider search response into the internal flight model.
// It is a pure transform: every offer yields exactly one Flight, in input
// order, and missing dictionary entries degrade to raw codes rather than
// failing the batch. Only the first itinerary is modeled; return-trip
// itineraries are intentionally ignored.
func Normalize(resp *amadeus.SearchResponse) []Flight {
	flights := make([]Flight, 0, len(resp.Data))

	for i, offer := range resp.Data {
		flights = append(flights, normalizeOffer(resp, offer, i))
	}

	return flights
}

func normalizeOffer(resp *amadeus.SearchResponse, offer amadeus.FlightOffer, index int) Flight {
	id := offer.ID
	if id == "" {
		id = fmt.Sprintf("flight-%d", index)
	}

	f := Flight{
		ID:       id,
		Price:    roundPrice(offer.Price.GrandTotal),
		Currency: offer.Price.Currency,
		Cabin:    CabinEconomy,
	}

	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		// Degenerate offer; keep the one-Flight-per-offer contract with
		// whatever fields are resolvable.
		return f
	}

	itinerary := offer.Itineraries[0]
	segments := itinerary.Segments
	first := segments[0]
	last := segments[len(segments)-1]

	stops := len(segments) - 1
	if stops < 0 {
		stops = 0
	}

	carrierCode := first.CarrierCode
	airline := resp.Dictionaries.Carriers[carrierCode]
	if airline == "" {
		airline = airlineNames[carrierCode]
	}
	if airline == "" {
		airline = carrierCode
	}

	aircraft := resp.Dictionaries.Aircraft[first.Aircraft.Code]
	if aircraft == "" {
		aircraft = first.Aircraft.Code
	}

	cabin := "ECONOMY"
	if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
		if c := offer.TravelerPricings[0].FareDetailsBySegment[0].Cabin; c != "" {
			cabin = c
		}
	}

	var stopCities []string
	if stops > 0 {
		stopCities = make([]string, 0, stops)
		for _, segment := range segments[:len(segments)-1] {
			stopCities = append(stopCities, cityName(segment.Arrival.IataCode))
		}
	}

	f.Airline = airline
	f.AirlineCode = carrierCode
	f.Origin = cityName(first.Departure.IataCode)
	f.Destination = cityName(last.Arrival.IataCode)
	f.OriginCode = first.Departure.IataCode
	f.DestinationCode = last.Arrival.IataCode
	f.DepartureTime = timeOfDay(first.Departure.At)
	f.ArrivalTime = timeOfDay(last.Arrival.At)
	f.Duration = ParseISODuration(itinerary.Duration)
	f.Stops = stops
	f.StopCities = stopCities
	f.Aircraft = aircraft
	f.FlightNumber = carrierCode + first.Number
	f.DepartureDate = datePart(first.Departure.At)
	f.Cabin = mapCabin(cabin)

	return f
}
