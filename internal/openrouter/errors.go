package openrouter

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network activity when no
// credential is available from the environment or a .env file.
var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY must be set in the environment or a .env file")

// ErrNoImage is returned for a well-formed response that carries no image.
var ErrNoImage = errors.New("no images in response")

// StatusError reports a non-2xx response from the API, including the
// error message parsed from the body when one is present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error [%d]: %s", e.StatusCode, e.Message)
}

// UnsupportedFormatError reports an image reference whose scheme is
// neither a data URI nor http(s).
type UnsupportedFormatError struct {
	Reference string
}

func (e *UnsupportedFormatError) Error() string {
	ref := e.Reference
	if len(ref) > 50 {
		ref = ref[:50]
	}
	return fmt.Sprintf("unknown image format: %s", ref)
}
