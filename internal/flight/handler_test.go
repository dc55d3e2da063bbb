package flight

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewFlightHandler(svc).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchFlightsHandler(t *testing.T) {
	router := newTestRouter(newTestService(&fakeSearcher{}, &fakeStore{}))

	w := doJSON(t, router, http.MethodPost, "/v1/flights/search",
		`{"origin":"JFK","destination":"LHR","departure_date":"2026-09-15","adults":1}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Flights)
	assert.Equal(t, "mock", resp.Metadata.Source)
}

func TestSearchFlightsHandlerValidation(t *testing.T) {
	router := newTestRouter(newTestService(&fakeSearcher{}, &fakeStore{}))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing route", `{"departure_date":"2026-09-15"}`},
		{"missing date", `{"origin":"JFK","destination":"LHR"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/v1/flights/search", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), string(ErrorCodeValidation))
		})
	}
}

func TestFilterFlightsHandler(t *testing.T) {
	router := newTestRouter(newTestService(&fakeSearcher{}, &fakeStore{}))

	w := doJSON(t, router, http.MethodPost, "/v1/flights/filter",
		`{"origin":"JFK","destination":"LHR","departure_date":"2026-09-15","adults":1,
		  "filters":{"max_price":100000,"max_stops":0,"max_duration":24}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, f := range resp.Flights {
		assert.Equal(t, 0, f.Stops)
	}
	assert.GreaterOrEqual(t, resp.Metadata.TotalResults, resp.Metadata.FilteredResults)
}

func TestSearchAirportsHandler(t *testing.T) {
	router := newTestRouter(newTestService(&fakeSearcher{}, &fakeStore{}))

	req := httptest.NewRequest(http.MethodGet, "/v1/airports?q=tokyo", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Airports []Airport `json:"airports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Airports, 2)
	assert.Equal(t, "Tokyo", resp.Airports[0].City)
}

func TestCredentialsHandlers(t *testing.T) {
	router := newTestRouter(newTestService(&fakeSearcher{}, &fakeStore{}))

	w := doJSON(t, router, http.MethodGet, "/v1/credentials/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"configured":false`)

	w = doJSON(t, router, http.MethodPut, "/v1/credentials", `{"apiKey":"k","apiSecret":"s"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/credentials/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"configured":true`)

	w = doJSON(t, router, http.MethodPut, "/v1/credentials", `{"apiKey":"k"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
