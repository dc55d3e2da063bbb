package flight

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jetset/pkg/amadeus"
	"jetset/pkg/logger"
)

type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memCache) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type fakeStore struct {
	mu    sync.Mutex
	creds *amadeus.Credentials
	err   error
}

func (f *fakeStore) Load() (*amadeus.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds, f.err
}

func (f *fakeStore) Save(creds amadeus.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds = &creds
	return nil
}

type fakeSearcher struct {
	mu      sync.Mutex
	calls   int
	resp    *amadeus.SearchResponse
	err     error
	release chan struct{} // when set, SearchOffers blocks until closed
}

func (f *fakeSearcher) SearchOffers(_ context.Context, _ amadeus.SearchRequest, _ amadeus.Credentials) (*amadeus.SearchResponse, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	return f.resp, f.err
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func providerResponse() *amadeus.SearchResponse {
	return &amadeus.SearchResponse{
		Data: []amadeus.FlightOffer{
			{
				ID: "expensive",
				Itineraries: []amadeus.Itinerary{{
					Duration: "PT7H",
					Segments: []amadeus.Segment{{
						CarrierCode: "BA",
						Number:      "117",
						Departure:   amadeus.Endpoint{IataCode: "JFK", At: "2026-09-15T18:00:00"},
						Arrival:     amadeus.Endpoint{IataCode: "LHR", At: "2026-09-16T06:00:00"},
					}},
				}},
				Price: amadeus.Price{Currency: "USD", GrandTotal: "900.00"},
			},
			{
				ID: "cheap",
				Itineraries: []amadeus.Itinerary{{
					Duration: "PT8H",
					Segments: []amadeus.Segment{{
						CarrierCode: "AA",
						Number:      "100",
						Departure:   amadeus.Endpoint{IataCode: "JFK", At: "2026-09-15T08:00:00"},
						Arrival:     amadeus.Endpoint{IataCode: "LHR", At: "2026-09-15T20:00:00"},
					}},
				}},
				Price: amadeus.Price{Currency: "USD", GrandTotal: "400.00"},
			},
		},
	}
}

func newTestService(searcher OfferSearcher, store CredentialStore) *Service {
	return NewService(searcher, store, newMemCache(), 5, NewGenerator(42), logger.NewZeroLog("development"))
}

func searchFixture() SearchRequest {
	return SearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-09-15", Adults: 1}
}

func TestSearchFallsBackToGeneratorWithoutCredentials(t *testing.T) {
	svc := newTestService(&fakeSearcher{}, &fakeStore{})

	resp, err := svc.Search(context.Background(), searchFixture())
	require.NoError(t, err)

	assert.Equal(t, "mock", resp.Metadata.Source)
	assert.False(t, resp.Metadata.CacheHit)
	assert.NotEmpty(t, resp.Flights)
	assert.Equal(t, len(resp.Flights), resp.Metadata.TotalResults)
	assert.Equal(t, len(resp.Flights), resp.Metadata.FilteredResults)
}

func TestSearchProviderPathConvertsAndSorts(t *testing.T) {
	searcher := &fakeSearcher{resp: providerResponse()}
	store := &fakeStore{creds: &amadeus.Credentials{APIKey: "k", APISecret: "s"}}
	svc := newTestService(searcher, store)

	resp, err := svc.Search(context.Background(), searchFixture())
	require.NoError(t, err)

	assert.Equal(t, "amadeus", resp.Metadata.Source)
	require.Len(t, resp.Flights, 2)

	assert.Equal(t, "cheap", resp.Flights[0].ID, "results sorted ascending by price")
	assert.Equal(t, "expensive", resp.Flights[1].ID)
	assert.Equal(t, "INR", resp.Flights[0].Currency)
	assert.Equal(t, 33400, resp.Flights[0].Price, "400 USD at 83.5")
	assert.Equal(t, 75150, resp.Flights[1].Price)
}

func TestSearchServesSecondCallFromCache(t *testing.T) {
	searcher := &fakeSearcher{resp: providerResponse()}
	store := &fakeStore{creds: &amadeus.Credentials{APIKey: "k", APISecret: "s"}}
	svc := newTestService(searcher, store)

	first, err := svc.Search(context.Background(), searchFixture())
	require.NoError(t, err)
	require.False(t, first.Metadata.CacheHit)

	second, err := svc.Search(context.Background(), searchFixture())
	require.NoError(t, err)

	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, "amadeus", second.Metadata.Source)
	assert.Equal(t, first.Flights, second.Flights)
	assert.Equal(t, 1, searcher.callCount(), "cache hit skips the provider")
}

func TestSearchDiscardsSupersededResponse(t *testing.T) {
	release := make(chan struct{})
	searcher := &fakeSearcher{resp: providerResponse(), release: release}
	store := &fakeStore{creds: &amadeus.Credentials{APIKey: "k", APISecret: "s"}}
	svc := newTestService(searcher, store)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Search(context.Background(), searchFixture())
		errCh <- err
	}()

	// Wait for the first search to reach the provider, then supersede it.
	require.Eventually(t, func() bool { return searcher.callCount() == 1 }, time.Second, time.Millisecond)

	newer := searchFixture()
	newer.Destination = "CDG"
	newerCh := make(chan error, 1)
	go func() {
		_, err := svc.Search(context.Background(), newer)
		newerCh <- err
	}()
	require.Eventually(t, func() bool { return searcher.callCount() == 2 }, time.Second, time.Millisecond)

	close(release)

	require.NoError(t, <-newerCh, "the newer search wins")

	err := <-errCh
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, ErrorCodeStaleSearch, appErr.Code)
}

func TestSearchPropagatesProviderError(t *testing.T) {
	searcher := &fakeSearcher{err: &amadeus.AuthenticationError{Status: "401 Unauthorized"}}
	store := &fakeStore{creds: &amadeus.Credentials{APIKey: "k", APISecret: "s"}}
	svc := newTestService(searcher, store)

	_, err := svc.Search(context.Background(), searchFixture())

	var authErr *amadeus.AuthenticationError
	assert.ErrorAs(t, err, &authErr)
}

func TestFilterDefaultsToFacetPriceBound(t *testing.T) {
	// INR prices dwarf the storefront's initial 2000 slider value; absent
	// filters must widen to the derived bounds instead of hiding everything.
	searcher := &fakeSearcher{resp: providerResponse()}
	store := &fakeStore{creds: &amadeus.Credentials{APIKey: "k", APISecret: "s"}}
	svc := newTestService(searcher, store)

	resp, err := svc.Filter(context.Background(), FilterRequest{SearchRequest: searchFixture()})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Metadata.TotalResults)
	assert.Equal(t, 2, resp.Metadata.FilteredResults)
}

func TestFilterAppliesExplicitFilters(t *testing.T) {
	searcher := &fakeSearcher{resp: providerResponse()}
	store := &fakeStore{creds: &amadeus.Credentials{APIKey: "k", APISecret: "s"}}
	svc := newTestService(searcher, store)

	filters := DefaultFilters()
	filters.MaxPrice = 40000
	resp, err := svc.Filter(context.Background(), FilterRequest{SearchRequest: searchFixture(), Filters: &filters})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Metadata.TotalResults, "facets cover the unfiltered set")
	require.Equal(t, 1, resp.Metadata.FilteredResults)
	assert.Equal(t, "cheap", resp.Flights[0].ID)
	assert.Len(t, resp.Facets.Airlines, 2, "facets are derived before filtering")
}

func TestFilterReusesCachedResults(t *testing.T) {
	searcher := &fakeSearcher{resp: providerResponse()}
	store := &fakeStore{creds: &amadeus.Credentials{APIKey: "k", APISecret: "s"}}
	svc := newTestService(searcher, store)

	_, err := svc.Search(context.Background(), searchFixture())
	require.NoError(t, err)

	resp, err := svc.Filter(context.Background(), FilterRequest{SearchRequest: searchFixture()})
	require.NoError(t, err)

	assert.True(t, resp.Metadata.CacheHit)
	assert.Equal(t, 1, searcher.callCount())
}

func TestSaveCredentialsValidation(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(&fakeSearcher{}, store)

	err := svc.SaveCredentials(amadeus.Credentials{APIKey: "k"})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeValidation, appErr.Code)

	require.NoError(t, svc.SaveCredentials(amadeus.Credentials{APIKey: "k", APISecret: "s"}))

	configured, err := svc.HasCredentials()
	require.NoError(t, err)
	assert.True(t, configured)
}

func TestHasCredentialsPropagatesStoreError(t *testing.T) {
	svc := newTestService(&fakeSearcher{}, &fakeStore{err: errors.New("disk gone")})

	_, err := svc.HasCredentials()
	assert.Error(t, err)
}
