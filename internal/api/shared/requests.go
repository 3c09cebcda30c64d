package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes bounds request bodies; contacts and tasks are small.
const MaxBodyBytes = 1 << 20

var (
	// ErrEmptyBody is returned by DecodeJSON when the request has no body.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrTrailingData is returned by DecodeJSON when the body holds more than one JSON value.
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes a single JSON value from the request body into v.
// Unknown fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return ErrTrailingData
	default:
		if errors.Is(decodeError(err), ErrBodyTooLarge) {
			return ErrBodyTooLarge
		}
		return ErrTrailingData
	}
}

func decodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	case errors.As(err, &maxBytesErr):
		return ErrBodyTooLarge
	default:
		return err
	}
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
