package validation

import (
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"mallapi/internal/domain"
)

const (
	maxSlugLength  = 64
	maxRouteLength = 256
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// QueryValidator checks and parses the path and query parameters of the
// catalog and diagnostics endpoints. Empty optional parameters fall back to
// their defaults.
type QueryValidator struct {
	defaultPageSize int
	maxPageSize     int
}

func NewQueryValidator(defaultPageSize, maxPageSize int) *QueryValidator {
	return &QueryValidator{
		defaultPageSize: min(defaultPageSize, maxPageSize),
		maxPageSize:     maxPageSize,
	}
}

func (v *QueryValidator) ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return ErrEmptySlug
	}
	if len(slug) > maxSlugLength {
		return ErrSlugTooLong
	}
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}

func (v *QueryValidator) ParsePage(limit, offset string) (domain.Page, error) {
	page := domain.Page{Limit: v.defaultPageSize}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return domain.Page{}, &FieldError{Field: "limit", Err: ErrInvalidLimit}
		}
		if n > v.maxPageSize {
			return domain.Page{}, &FieldError{Field: "limit", Err: ErrLimitTooLarge}
		}
		page.Limit = n
	}

	if offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return domain.Page{}, &FieldError{Field: "offset", Err: ErrInvalidOffset}
		}
		page.Offset = n
	}
	return page, nil
}

// ParseThreshold parses a millisecond threshold, returning def when raw is
// empty.
func (v *QueryValidator) ParseThreshold(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FieldError{Field: "threshold", Err: ErrInvalidThreshold}
	}
	return f, nil
}

// ValidateEndpointQuery checks a route filter and an optional method.
func (v *QueryValidator) ValidateEndpointQuery(route, method string) error {
	if strings.TrimSpace(route) == "" {
		return &FieldError{Field: "route", Err: ErrEmptyRoute}
	}
	if len(route) > maxRouteLength {
		return &FieldError{Field: "route", Err: ErrRouteTooLong}
	}
	if method != "" && !knownMethods[strings.ToUpper(method)] {
		return &FieldError{Field: "method", Err: ErrInvalidMethod}
	}
	return nil
}

func (v *QueryValidator) ParseMinCount(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, &FieldError{Field: "min", Err: ErrInvalidMinCount}
	}
	return n, nil
}
