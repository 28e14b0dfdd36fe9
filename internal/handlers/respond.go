package handlers

import (
	"encoding/json"
	"net/http"
)

// apiError is the relay's error envelope. Message carries the transport
// failure text and is left out otherwise.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondJSON encodes payload with the given status. A nil payload writes
// headers only.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError writes the error envelope with an optional detail message.
func respondError(w http.ResponseWriter, status int, msg string, detail ...string) {
	body := apiError{Error: msg}
	if len(detail) > 0 {
		body.Message = detail[0]
	}
	respondJSON(w, status, body)
}
