package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync/atomic"
	"time"

	"jetset/pkg/amadeus"
	"jetset/pkg/cache"
	"jetset/pkg/logger"
)

// OfferSearcher is the provider-facing search contract.
type OfferSearcher interface {
	SearchOffers(ctx context.Context, req amadeus.SearchRequest, creds amadeus.Credentials) (*amadeus.SearchResponse, error)
}

// CredentialStore persists the provider key/secret pair. Load returns
// (nil, nil) when nothing is configured.
type CredentialStore interface {
	Load() (*amadeus.Credentials, error)
	Save(creds amadeus.Credentials) error
}

type Service struct {
	client OfferSearcher
	creds  CredentialStore
	cache  cache.Cache
	ttl    time.Duration
	mock   *Generator
	logger logger.Client

	// generation orders search invocations so a late-arriving response from
	// a superseded search is discarded instead of overwriting fresher data.
	generation atomic.Uint64
}

func NewService(client OfferSearcher, creds CredentialStore, c cache.Cache, ttlMinutes int, mock *Generator, log logger.Client) *Service {
	return &Service{
		client: client,
		creds:  creds,
		cache:  c,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		mock:   mock,
		logger: log,
	}
}

// cachedResults is the cache payload: the normalized, currency-adjusted,
// price-sorted result set plus where it came from.
type cachedResults struct {
	Source  string   `json:"source"`
	Flights []Flight `json:"flights"`
}

// Search runs the full pipeline: provider search (or the synthetic generator
// when no credentials are configured), normalization, currency adjustment,
// price-ascending sort, facet derivation.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	flights, meta, err := s.results(ctx, req)
	if err != nil {
		return nil, err
	}

	meta.TotalResults = len(flights)
	meta.FilteredResults = len(flights)

	return &SearchResponse{
		SearchCriteria: req,
		Metadata:       meta,
		Facets:         DeriveFacets(flights),
		Flights:        flights,
	}, nil
}

// Filter recomputes the visible subset over the result set for the given
// criteria. The full set comes from cache when possible and is refetched
// otherwise; filtering itself is always a full recomputation.
func (s *Service) Filter(ctx context.Context, req FilterRequest) (*SearchResponse, error) {
	flights, meta, err := s.results(ctx, req.SearchRequest)
	if err != nil {
		return nil, err
	}

	facets := DeriveFacets(flights)

	filters := DefaultFilters()
	filters.MaxPrice = facets.PriceBounds.Max
	if req.Filters != nil {
		filters = *req.Filters
	}

	visible := ApplyFilters(flights, filters)

	meta.TotalResults = len(flights)
	meta.FilteredResults = len(visible)

	return &SearchResponse{
		SearchCriteria: req.SearchRequest,
		Metadata:       meta,
		Facets:         facets,
		Flights:        visible,
	}, nil
}

// results returns the price-sorted result set for the criteria, serving from
// cache when a fresh entry exists.
func (s *Service) results(ctx context.Context, req SearchRequest) ([]Flight, Metadata, error) {
	if req.Adults <= 0 {
		req.Adults = 1
	}

	gen := s.generation.Add(1)
	cacheKey := s.cacheKey(req)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var payload cachedResults
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			s.logger.Error("failed to unmarshal cached results", logger.Field{Key: "err", Value: err})
		} else {
			return payload.Flights, Metadata{CacheHit: true, CacheKey: cacheKey, Source: payload.Source}, nil
		}
	}

	startTime := time.Now()
	flights, source, err := s.fetch(ctx, req)
	if err != nil {
		return nil, Metadata{}, err
	}
	searchTime := time.Since(startTime).Milliseconds()

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})

	// A newer search was issued while this one was in flight; its results
	// win and this response is discarded.
	if s.generation.Load() != gen {
		return nil, Metadata{}, NewAppError(http.StatusConflict, ErrorCodeStaleSearch, "search superseded by a newer request")
	}

	if payload, err := json.Marshal(cachedResults{Source: source, Flights: flights}); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(payload), s.ttl); err != nil {
			s.logger.Error("failed to cache search results",
				logger.Field{Key: "err", Value: err},
				logger.Field{Key: "cache_key", Value: cacheKey},
			)
		}
	}

	return flights, Metadata{SearchTimeMs: searchTime, CacheKey: cacheKey, Source: source}, nil
}

// fetch retrieves flights from the provider, or from the synthetic generator
// when no credentials are configured.
func (s *Service) fetch(ctx context.Context, req SearchRequest) ([]Flight, string, error) {
	creds, err := s.creds.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load credentials: %w", err)
	}

	if creds == nil {
		s.logger.Info("no provider credentials configured, using generated data",
			logger.Field{Key: "route", Value: req.Origin + "-" + req.Destination},
		)
		return s.mock.GenerateFlights(req), "mock", nil
	}

	resp, err := s.client.SearchOffers(ctx, providerRequest(req), *creds)
	if err != nil {
		return nil, "", err
	}

	return ConvertUSDToINR(Normalize(resp)), "amadeus", nil
}

func providerRequest(req SearchRequest) amadeus.SearchRequest {
	return amadeus.SearchRequest{
		OriginLocationCode:      req.Origin,
		DestinationLocationCode: req.Destination,
		DepartureDate:           req.DepartureDate,
		ReturnDate:              req.ReturnDate,
		Adults:                  req.Adults,
		Children:                req.Children,
		Infants:                 req.Infants,
		TravelClass:             req.CabinClass,
	}
}

// SaveCredentials validates and persists the provider key/secret pair.
func (s *Service) SaveCredentials(creds amadeus.Credentials) error {
	if creds.APIKey == "" || creds.APISecret == "" {
		return NewAppError(http.StatusBadRequest, ErrorCodeValidation, "apiKey and apiSecret are required")
	}
	return s.creds.Save(creds)
}

// HasCredentials reports whether a provider key/secret pair is configured.
func (s *Service) HasCredentials() (bool, error) {
	creds, err := s.creds.Load()
	if err != nil {
		return false, err
	}
	return creds != nil, nil
}

// cacheKey creates a deterministic key from search parameters.
func (s *Service) cacheKey(req SearchRequest) string {
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%d:%d:%d:%s",
		req.Origin,
		req.Destination,
		req.DepartureDate,
		req.ReturnDate,
		req.Adults,
		req.Children,
		req.Infants,
		req.CabinClass,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}
