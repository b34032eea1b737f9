package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rogerio-castellano/factory-management/internal/logger"
	repo "github.com/rogerio-castellano/factory-management/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// respond writes data and logs a failed write.
func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		logger.Error(r.Context(), err, "Failed to write JSON response")
	}
}

// unavailable reports whether err is a connection failure and, if so,
// answers 500 on the caller's behalf.
func unavailable(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, repo.ErrUnavailable) {
		return false
	}
	logger.Error(r.Context(), err, "Database connection failed")
	respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: "Database connection failed"})
	return true
}

// NoContentHandler answers CORS preflight requests.
func NoContentHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
