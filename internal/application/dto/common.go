package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON (49.99), no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
