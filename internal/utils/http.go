package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the body written by [WriteError].
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON serializes data and writes it with statusCode and an
// application/json content type. If marshaling fails it responds with 500
// and returns the wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}
