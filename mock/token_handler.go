package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type TokenError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenHandler fakes the client-credentials grant. Any non-empty key/secret
// pair is accepted.
func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if r.PostFormValue("grant_type") != "client_credentials" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TokenError{Error: "unsupported_grant_type", ErrorDescription: "only client_credentials is supported"})
		return
	}

	if r.PostFormValue("client_id") == "" || r.PostFormValue("client_secret") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(TokenError{Error: "invalid_client", ErrorDescription: "client_id and client_secret are required"})
		return
	}

	token := make([]byte, 16)
	rand.Read(token)

	json.NewEncoder(w).Encode(TokenResponse{
		AccessToken: hex.EncodeToString(token),
		TokenType:   "Bearer",
		ExpiresIn:   1799,
	})
}
