// Package httpx provides HTTP response utilities for the API envelope.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the outer shape of every API response.
type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the failure details of an envelope.
type ErrorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK sends a success envelope.
func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Fail sends a failure envelope.
func Fail(w http.ResponseWriter, status int, name, message, cause string) {
	JSON(w, status, Envelope{Success: false, Error: &ErrorBody{Name: name, Message: message, Cause: cause}})
}

// DecodeJSON decodes the JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
