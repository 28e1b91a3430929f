package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// Error categories surfaced to clients. Internals never leak past the
// generic message.
const (
	CategoryValidation      = "validation"
	CategoryUnauthenticated = "unauthenticated"
	CategoryForbidden       = "forbidden"
	CategoryConflict        = "conflict"
	CategoryNotFound        = "not_found"
	CategoryInternal        = "internal"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Code     int    `json:"code"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
	Data     any    `json:"data,omitempty"`
}

// JSON writes a success or informational response using the common envelope.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Code: status, Message: message, Data: data})
}

// Error writes a {category, message} error response.
func Error(w http.ResponseWriter, status int, category, message string) {
	write(w, status, Envelope{Code: status, Category: category, Message: message})
}

func write(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}
