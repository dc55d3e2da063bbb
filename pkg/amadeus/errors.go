package amadeus

import "fmt"

// AuthenticationError indicates the credential exchange was rejected. The
// caller should prompt for fresh credentials.
type AuthenticationError struct {
	Status string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Status)
}

// SearchError indicates the offer-search request was rejected or the network
// call failed (including timeouts). Retryable from the user's point of view.
type SearchError struct {
	Status string
	Err    error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flight search failed: %v", e.Err)
	}
	return fmt.Sprintf("flight search failed: %s", e.Status)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
