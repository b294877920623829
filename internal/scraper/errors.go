package scraper

import "errors"

var (
	// ErrTransport is returned when a request fails or returns a non-success status.
	ErrTransport = errors.New("transport error")

	// ErrParse is returned when a payload cannot be extracted or decoded.
	ErrParse = errors.New("parse error")

	// ErrNotFound is returned when every resolution strategy is exhausted.
	ErrNotFound = errors.New("not found")
)
