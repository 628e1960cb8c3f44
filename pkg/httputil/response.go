// Package httputil provides the response and request helpers shared by the
// REST handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getmockd/magemock/pkg/magento"
)

// MaxBodySize caps the request bodies the mock reads.
const MaxBodySize = 10 << 20

// WriteJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteOK writes a 200 OK response with data.
func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteMessage writes the platform's error envelope, {"message": ...}.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteError writes err as an error envelope with the status code it maps
// to. Errors without a status code are reported as 500.
func WriteError(w http.ResponseWriter, err error) {
	WriteMessage(w, magento.StatusCode(err), err.Error())
}

// WriteNotFound writes a 404 Not Found error response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusNotFound, message)
}

// DecodeJSON reads the request body into v. An empty or malformed body is
// reported as a ValidationError; errors raised by v's own decoding are
// returned as they are.
func DecodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(body) == 0 {
		return &magento.ValidationError{Message: "Request body is empty."}
	}
	if err := json.Unmarshal(body, v); err != nil {
		var sc magento.StatusCodeError
		if errors.As(err, &sc) {
			return err
		}
		return &magento.ValidationError{Message: fmt.Sprintf("Decoding error: %v", err)}
	}
	return nil
}
