package types

// PublicHTTPError is the wire shape of a generic API error.
type PublicHTTPError struct {
	// HTTP status code
	Code *int64 `json:"status"`
	// Type of error
	Type *string `json:"type"`
	// Short, human-readable description
	Title *string `json:"title"`
	// More detailed, human-readable description
	Detail string `json:"detail,omitempty"`
}

// PublicHTTPValidationError is a PublicHTTPError extended with per-field
// validation failures.
type PublicHTTPValidationError struct {
	PublicHTTPError

	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// HTTPValidationErrorDetail describes a single failed field.
type HTTPValidationErrorDetail struct {
	// Name of the field that failed validation
	Key *string `json:"key"`
	// Location of the field ("body", "query", "path")
	In *string `json:"in"`
	// Description of the failure
	Error *string `json:"error"`
}

const (
	PublicHTTPErrorTypeGeneric = "generic"
)
