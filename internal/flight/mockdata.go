package flight

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

var mockAirlines = []struct {
	name string
	code string
}{
	{"Delta Airlines", "DL"},
	{"American Airlines", "AA"},
	{"United Airlines", "UA"},
	{"JetBlue Airways", "B6"},
	{"Southwest Airlines", "WN"},
	{"Emirates", "EK"},
	{"British Airways", "BA"},
	{"Lufthansa", "LH"},
	{"Air France", "AF"},
	{"Singapore Airlines", "SQ"},
}

var mockAircraft = []string{
	"Boeing 737-800",
	"Boeing 777-300ER",
	"Airbus A320",
	"Airbus A350-900",
	"Boeing 787-9",
	"Airbus A330-300",
	"Boeing 757-200",
	"Embraer E175",
}

var mockStopCities = []string{
	"Atlanta", "Chicago", "Denver", "Dallas", "Phoenix", "Miami", "Seattle",
	"Istanbul", "Doha", "Frankfurt", "Amsterdam", "Vienna", "Zurich",
}

// Generator produces synthetic flights for the search flow when no provider
// credentials are configured. Output follows the same invariants as
// normalized provider data and is sorted ascending by price.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// GenerateFlights synthesizes 15-25 plausible flights for the requested
// route.
func (g *Generator) GenerateFlights(req SearchRequest) []Flight {
	g.mu.Lock()
	defer g.mu.Unlock()

	origin, destination := g.routeNames(req)

	departureDate := req.DepartureDate
	if departureDate == "" {
		departureDate = time.Now().Format("2006-01-02")
	}

	count := g.rng.Intn(10) + 15
	flights := make([]Flight, 0, count)

	for i := 0; i < count; i++ {
		airline := mockAirlines[g.rng.Intn(len(mockAirlines))]
		stops := g.randomStops()

		var duration float64
		if stops == 0 {
			duration = g.rng.Float64()*8 + 2 // direct: 2-10 hours
		} else {
			duration = g.rng.Float64()*12 + 8 // with stops: 8-20 hours
		}
		duration = float64(int(duration*10)) / 10

		basePrice := g.rng.Float64()*800 + 200
		if stops == 0 {
			basePrice *= 1.3 // direct flights cost more
		}

		cabin := g.randomCabin()
		switch cabin {
		case CabinPremium:
			basePrice *= 1.5
		case CabinBusiness:
			basePrice *= 3
		case CabinFirst:
			basePrice *= 5
		}

		depHour := g.rng.Intn(24)
		depMinute := g.rng.Intn(4) * 15
		arrival := time.Date(2000, 1, 1, depHour, depMinute, 0, 0, time.UTC).
			Add(time.Duration(duration * float64(time.Hour)))

		var stopCities []string
		if stops > 0 {
			stopCities = make([]string, stops)
			for s := range stopCities {
				stopCities[s] = mockStopCities[g.rng.Intn(len(mockStopCities))]
			}
		}

		flights = append(flights, Flight{
			ID:              fmt.Sprintf("flight-%d", i),
			Airline:         airline.name,
			AirlineCode:     airline.code,
			Origin:          origin,
			Destination:     destination,
			OriginCode:      req.Origin,
			DestinationCode: req.Destination,
			DepartureTime:   fmt.Sprintf("%02d:%02d", depHour, depMinute),
			ArrivalTime:     arrival.Format("15:04"),
			Duration:        duration,
			Stops:           stops,
			StopCities:      stopCities,
			Price:           int(basePrice),
			Currency:        "USD",
			Aircraft:        mockAircraft[g.rng.Intn(len(mockAircraft))],
			FlightNumber:    fmt.Sprintf("%s%d", airline.code, g.rng.Intn(9000)+1000),
			DepartureDate:   departureDate,
			Cabin:           cabin,
		})
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})

	return flights
}

func (g *Generator) routeNames(req SearchRequest) (string, string) {
	origin := req.Origin
	if a, ok := LookupAirport(req.Origin); ok {
		origin = a.City
	}
	destination := req.Destination
	if a, ok := LookupAirport(req.Destination); ok {
		destination = a.City
	}
	return origin, destination
}

func (g *Generator) randomStops() int {
	r := g.rng.Float64()
	switch {
	case r < 0.3:
		return 0
	case r < 0.7:
		return 1
	case r < 0.9:
		return 2
	default:
		return 3
	}
}

func (g *Generator) randomCabin() CabinClass {
	r := g.rng.Float64()
	switch {
	case r < 0.7:
		return CabinEconomy
	case r < 0.8:
		return CabinPremium
	case r < 0.9:
		return CabinBusiness
	default:
		return CabinFirst
	}
}
