package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

type OffersResponse struct {
	Meta         Meta          `json:"meta"`
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries"`
}

type Meta struct {
	Count int `json:"count"`
}

type Dictionaries struct {
	Aircraft map[string]string `json:"aircraft"`
	Carriers map[string]string `json:"carriers"`
}

type FlightOffer struct {
	ID               string            `json:"id"`
	Source           string            `json:"source"`
	OneWay           bool              `json:"oneWay"`
	Itineraries      []Itinerary       `json:"itineraries"`
	Price            Price             `json:"price"`
	TravelerPricings []TravelerPricing `json:"travelerPricings"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Aircraft    Aircraft `json:"aircraft"`
	Duration    string   `json:"duration"`
	ID          string   `json:"id"`
}

type Endpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

type TravelerPricing struct {
	TravelerID           string       `json:"travelerId"`
	FareOption           string       `json:"fareOption"`
	TravelerType         string       `json:"travelerType"`
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type FareDetail struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
}

var carriers = []struct {
	code string
	name string
}{
	{"AA", "AMERICAN AIRLINES"},
	{"BA", "BRITISH AIRWAYS"},
	{"EK", "EMIRATES"},
	{"LH", "LUFTHANSA"},
	{"SQ", "SINGAPORE AIRLINES"},
	{"UA", "UNITED AIRLINES"},
}

var aircraftCodes = []struct {
	code string
	name string
}{
	{"320", "AIRBUS A320"},
	{"388", "AIRBUS A380-800"},
	{"738", "BOEING 737-800"},
	{"77W", "BOEING 777-300ER"},
	{"788", "BOEING 787-8"},
}

var cabins = []string{"ECONOMY", "ECONOMY", "ECONOMY", "PREMIUM_ECONOMY", "BUSINESS", "FIRST"}

var layoverAirports = []string{"DXB", "FRA", "IST", "DOH", "AMS"}

// FlightOffersHandler returns synthetic offers for the requested route. The
// response shape mirrors the real provider, dictionaries included, so the
// client's normalization path can run unchanged.
func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		http.Error(w, `{"error": "invalid_token"}`, http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	origin := query.Get("originLocationCode")
	destination := query.Get("destinationLocationCode")
	departureDate := query.Get("departureDate")
	if origin == "" || destination == "" || departureDate == "" {
		http.Error(w, `{"error": "missing required parameters"}`, http.StatusBadRequest)
		return
	}

	cabinFilter := query.Get("travelClass")

	count := 8 + rand.Intn(8)
	offers := make([]FlightOffer, 0, count)

	for i := 0; i < count; i++ {
		carrier := carriers[rand.Intn(len(carriers))]
		plane := aircraftCodes[rand.Intn(len(aircraftCodes))]
		cabin := cabins[rand.Intn(len(cabins))]
		if cabinFilter != "" {
			cabin = cabinFilter
		}

		stops := rand.Intn(3)
		hours := 2 + rand.Intn(8) + stops*4
		minutes := rand.Intn(4) * 15
		depHour := rand.Intn(24)

		price := 180 + rand.Float64()*820
		switch cabin {
		case "PREMIUM_ECONOMY":
			price *= 1.5
		case "BUSINESS":
			price *= 3
		case "FIRST":
			price *= 5
		}
		total := fmt.Sprintf("%.2f", price)

		segments := buildSegments(origin, destination, departureDate, depHour, stops, carrier.code, plane.code, i)

		offers = append(offers, FlightOffer{
			ID:     fmt.Sprintf("%d", i+1),
			Source: "GDS",
			OneWay: query.Get("returnDate") == "",
			Itineraries: []Itinerary{{
				Duration: fmt.Sprintf("PT%dH%dM", hours, minutes),
				Segments: segments,
			}},
			Price: Price{Currency: "USD", Total: total, Base: total, GrandTotal: total},
			TravelerPricings: []TravelerPricing{{
				TravelerID:   "1",
				FareOption:   "STANDARD",
				TravelerType: "ADULT",
				FareDetailsBySegment: []FareDetail{{
					SegmentID: segments[0].ID,
					Cabin:     cabin,
				}},
			}},
		})
	}

	dictionaries := Dictionaries{
		Aircraft: make(map[string]string),
		Carriers: make(map[string]string),
	}
	for _, c := range carriers {
		dictionaries.Carriers[c.code] = c.name
	}
	for _, a := range aircraftCodes {
		dictionaries.Aircraft[a.code] = a.name
	}

	delay := 50 + rand.Intn(51) // 50 to 100ms
	time.Sleep(time.Duration(delay) * time.Millisecond)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(OffersResponse{
		Meta:         Meta{Count: len(offers)},
		Data:         offers,
		Dictionaries: dictionaries,
	})
}

func buildSegments(origin, destination, date string, depHour, stops int, carrier, aircraft string, offerIdx int) []Segment {
	waypoints := []string{origin}
	for s := 0; s < stops; s++ {
		waypoints = append(waypoints, layoverAirports[rand.Intn(len(layoverAirports))])
	}
	waypoints = append(waypoints, destination)

	segments := make([]Segment, 0, len(waypoints)-1)
	hour := depHour

	for leg := 0; leg < len(waypoints)-1; leg++ {
		legHours := 2 + rand.Intn(5)
		segments = append(segments, Segment{
			Departure:   Endpoint{IataCode: waypoints[leg], At: fmt.Sprintf("%sT%02d:%02d:00", date, hour%24, rand.Intn(4)*15)},
			Arrival:     Endpoint{IataCode: waypoints[leg+1], At: fmt.Sprintf("%sT%02d:%02d:00", date, (hour+legHours)%24, rand.Intn(4)*15)},
			CarrierCode: carrier,
			Number:      fmt.Sprintf("%d", 100+rand.Intn(900)),
			Aircraft:    Aircraft{Code: aircraft},
			Duration:    fmt.Sprintf("PT%dH", legHours),
			ID:          fmt.Sprintf("%d-%d", offerIdx+1, leg+1),
		})
		hour += legHours + 2
	}

	return segments
}
