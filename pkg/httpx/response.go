package httpx

import (
	"encoding/json"
	"net/http"
)

// MaxBodyBytes caps JSON request bodies. Preset payloads are tiny; anything
// near this limit is abuse.
const MaxBodyBytes = 64 << 10

// WriteJSON writes a JSON response with the given status code. Responses
// from this service may contain password material metadata, so caching is
// always disabled.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON decodes a size-capped JSON request body into v, rejecting
// unknown fields so schema typos surface as validation errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
