package scraper

import (
	"fmt"
	"time"
)

// FetchError reports a transport or HTTP failure for one (date, area)
// page. The run continues; the pair is skipped.
type FetchError struct {
	Date time.Time
	Area int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for area %d on %s: %v", e.Area, e.Date.Format("2006-01-02"), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a malformed page: a header cell whose capacity
// text cannot be parsed, or a booking link missing a required query
// parameter. Field names which part of the page was bad.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed on %s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ResolveError reports that no row on the page had a booking link for
// every header column, so positional identity mapping was impossible.
type ResolveError struct {
	Headers int
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("no fully-booked row found to resolve %d room identities", e.Headers)
}
