package airing

import "fmt"

// Episode field names, in the order they appear in a listing item.
const (
	FieldSeries    = "series"
	FieldNumber    = "number"
	FieldTitle     = "title"
	FieldCountdown = "countdown"
)

// fields is the positional layout of a listing item's element children.
var fields = []string{FieldSeries, FieldNumber, FieldTitle, FieldCountdown}

// FetchError is returned when the listing page of a series could not be retrieved.
type FetchError struct {
	Series string
	URL    string
	Cause  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %q: %v", e.Series, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// MissingFieldError reports a matched listing item that has fewer element
// children than there are episode fields. Field is the first absent one.
type MissingFieldError struct {
	Series string
	Field  string
}

func (e *MissingFieldError) Error() string {
	if e.Series == "" {
		return "missing data: " + e.Field
	}
	return fmt.Sprintf("extract %q: missing data: %s", e.Series, e.Field)
}

// ParseError is returned when a fetched document is not parseable as HTML.
type ParseError struct {
	Series string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Series == "" {
		return fmt.Sprintf("parse: %v", e.Cause)
	}
	return fmt.Sprintf("parse %q: %v", e.Series, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
