package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"jetset/pkg/logger"
)

const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"

	// Tokens are treated as expired one minute early to avoid racing the
	// real expiry mid-request.
	tokenSafetyMargin = 60 * time.Second

	defaultMaxOffers = 50
)

// travelClasses maps the internal cabin vocabulary to the provider's.
// Unmapped values omit the travelClass parameter entirely.
var travelClasses = map[string]string{
	"economy":  "ECONOMY",
	"premium":  "PREMIUM_ECONOMY",
	"business": "BUSINESS",
	"first":    "FIRST",
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Client talks to the flight-offer provider. It owns the cached access token;
// concurrent callers share a single in-flight token exchange instead of
// firing duplicates.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Client

	now   func() time.Time
	group singleflight.Group

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewClient(httpClient *http.Client, baseURL string, log logger.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     log,
		now:        time.Now,
	}
}

// Authenticate returns a bearer token, reusing the cached one while it is
// still valid.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	c.mu.Lock()
	if c.token != "" && c.now().Before(c.expiry) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	result, err, _ := c.group.Do("token", func() (any, error) {
		return c.exchangeToken(ctx, creds)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *Client) exchangeToken(ctx context.Context, creds Credentials) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", creds.APIKey)
	form.Set("client_secret", creds.APISecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthenticationError{Status: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("token exchange rejected", logger.Field{Key: "status", Value: resp.Status})
		return "", &AuthenticationError{Status: resp.Status}
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.mu.Lock()
	c.token = tok.AccessToken
	c.expiry = c.now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenSafetyMargin)
	c.mu.Unlock()

	c.logger.Debug("token refreshed", logger.Field{Key: "expires_in", Value: tok.ExpiresIn})
	return tok.AccessToken, nil
}

// SearchOffers issues an authenticated flight-offer search. Authentication
// strictly precedes the search call; a failed exchange short-circuits it.
func (c *Client) SearchOffers(ctx context.Context, req SearchRequest, creds Credentials) (*SearchResponse, error) {
	token, err := c.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("originLocationCode", req.OriginLocationCode)
	query.Set("destinationLocationCode", req.DestinationLocationCode)
	query.Set("departureDate", req.DepartureDate)
	query.Set("adults", strconv.Itoa(req.Adults))

	maxOffers := req.Max
	if maxOffers <= 0 {
		maxOffers = defaultMaxOffers
	}
	query.Set("max", strconv.Itoa(maxOffers))

	if req.ReturnDate != "" {
		query.Set("returnDate", req.ReturnDate)
	}
	if req.Children > 0 {
		query.Set("children", strconv.Itoa(req.Children))
	}
	if req.Infants > 0 {
		query.Set("infants", strconv.Itoa(req.Infants))
	}
	if travelClass, ok := travelClasses[strings.ToLower(req.TravelClass)]; ok {
		query.Set("travelClass", travelClass)
	}

	searchURL := c.baseURL + offersPath + "?" + query.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &SearchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("offer search rejected", logger.Field{Key: "status", Value: resp.Status})
		return nil, &SearchError{Status: resp.Status}
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode offer response: %w", err)
	}

	return &searchResp, nil
}
