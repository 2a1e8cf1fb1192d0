// backend/src/utils/utils.go
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

// RoundFloat rounds v to the given number of decimal places for display.
// Decimal arithmetic avoids the float64 drift of the pow-multiply-divide trick.
func RoundFloat(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// JSONError is the error envelope every handler returns.
type JSONError struct {
	Error string `json:"error"`
}

// SendJSONError writes a JSON error response with the given status code.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(JSONError{Error: message})
}

// SendJSON writes v as a JSON response with status 200.
func SendJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
