package validation

import "errors"

var (
	ErrEmptySlug        = errors.New("slug is required")
	ErrInvalidSlug      = errors.New("slug may only contain lowercase letters, digits and hyphens")
	ErrSlugTooLong      = errors.New("slug exceeds maximum length")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
	ErrLimitTooLarge    = errors.New("limit exceeds maximum page size")
	ErrInvalidOffset    = errors.New("offset must be a non-negative integer")
	ErrInvalidThreshold = errors.New("threshold must be a non-negative number")
	ErrEmptyRoute       = errors.New("route is required")
	ErrRouteTooLong     = errors.New("route exceeds maximum length")
	ErrInvalidMethod    = errors.New("method is not a known http method")
	ErrInvalidMinCount  = errors.New("min must be a positive integer")
)

// FieldError ties a validation failure to the query parameter that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
