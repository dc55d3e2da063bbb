package flight

import (
	"strconv"
	"strings"
)

// ApplyFilters returns the subset of flights passing every active predicate,
// preserving input order. Pure and idempotent; the input slice is never
// mutated.
func ApplyFilters(flights []Flight, filters SearchFilters) []Flight {
	filtered := make([]Flight, 0, len(flights))

	for _, f := range flights {
		if matchesFilters(f, filters) {
			filtered = append(filtered, f)
		}
	}

	return filtered
}

// matchesFilters is a strict conjunction: every active predicate must pass.
func matchesFilters(f Flight, filters SearchFilters) bool {
	if f.Price > filters.MaxPrice {
		return false
	}

	if f.Stops > filters.MaxStops {
		return false
	}

	if f.Duration > filters.MaxDuration {
		return false
	}

	if filters.DirectOnly && f.Stops != 0 {
		return false
	}

	if len(filters.CabinClasses) > 0 && !containsCabin(filters.CabinClasses, f.Cabin) {
		return false
	}

	if len(filters.DepartureTimeBuckets) > 0 && !inAnyBucket(filters.DepartureTimeBuckets, departureHour(f.DepartureTime)) {
		return false
	}

	if len(filters.Airlines) > 0 {
		matched := false
		for _, airline := range filters.Airlines {
			if strings.EqualFold(f.Airline, airline) || strings.EqualFold(f.AirlineCode, airline) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func containsCabin(allowed []CabinClass, cabin CabinClass) bool {
	for _, c := range allowed {
		if c == cabin {
			return true
		}
	}
	return false
}

// departureHour reads the hour out of an HH:MM time-of-day string.
func departureHour(timeOfDay string) int {
	if len(timeOfDay) < 2 {
		return 0
	}
	hour, err := strconv.Atoi(timeOfDay[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0
	}
	return hour
}

// inAnyBucket reports whether the hour falls inside one of the selected
// buckets: early=[6,12), afternoon=[12,18), evening=[18,24), night=[0,6).
func inAnyBucket(buckets []TimeBucket, hour int) bool {
	for _, b := range buckets {
		switch b {
		case BucketEarly:
			if hour >= 6 && hour < 12 {
				return true
			}
		case BucketAfternoon:
			if hour >= 12 && hour < 18 {
				return true
			}
		case BucketEvening:
			if hour >= 18 && hour < 24 {
				return true
			}
		case BucketNight:
			if hour >= 0 && hour < 6 {
				return true
			}
		}
	}
	return false
}
