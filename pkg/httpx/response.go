package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 64 << 10

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorBody.
func WriteError(w http.ResponseWriter, code int, kind, desc string) {
	WriteJSON(w, code, ErrorBody{Error: kind, ErrorDescription: desc})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Membership answers must never be served from an intermediary cache.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON reads a single JSON object from the request body into v,
// rejecting unknown fields and trailing data. An empty body decodes to the
// zero value.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode json body: %w", err)
	}
	if dec.More() {
		return errors.New("decode json body: unexpected trailing data")
	}
	return nil
}
