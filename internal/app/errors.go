package app

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoFetcher      = errors.New("no sheet fetcher configured")
	ErrNoSnapshot     = errors.New("no snapshot available")
	ErrMemberNotFound = errors.New("crew member not found")
)
