package httperrors

import (
	"fmt"

	"github.com/go-openapi/swag"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/types"
)

// HTTPError is an echo-compatible error carrying the public wire shape.
type HTTPError struct {
	types.PublicHTTPError
	Internal error `json:"-"`
}

// NewHTTPError builds a basic HTTPError.
func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Code:  swag.Int64(int64(code)),
			Type:  swag.String(errorType),
			Title: swag.String(title),
		},
	}
}

// NewHTTPErrorWithDetail builds an HTTPError with an additional detail text
// and an internal cause never exposed on the wire.
func NewHTTPErrorWithDetail(code int, errorType string, title string, detail string, internal error) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Code:   swag.Int64(int64(code)),
			Type:   swag.String(errorType),
			Title:  swag.String(title),
			Detail: detail,
		},
		Internal: internal,
	}
}

func (e *HTTPError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("HTTPError %d (%s): %s, %v", *e.Code, *e.Type, *e.Title, e.Internal)
	}

	return fmt.Sprintf("HTTPError %d (%s): %s", *e.Code, *e.Type, *e.Title)
}

// HTTPValidationError extends HTTPError with per-field failures.
type HTTPValidationError struct {
	types.PublicHTTPValidationError
	Internal error `json:"-"`
}

// NewHTTPValidationError builds an HTTPValidationError.
func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError: types.PublicHTTPError{
				Code:  swag.Int64(int64(code)),
				Type:  swag.String(errorType),
				Title: swag.String(title),
			},
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s (%d fields)", *e.Code, *e.Type, *e.Title, len(e.ValidationErrors))
}
