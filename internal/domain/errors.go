package domain

import "errors"

// Domain errors.
var (
	// ErrSourceUnavailable: the source page could not be fetched or parsed.
	ErrSourceUnavailable = errors.New("event source unavailable")
	// ErrNoHostData: the scraped event lists no hosts, so no organizer can be resolved.
	ErrNoHostData = errors.New("scraped event has no host data")
	// ErrPlaceNotFound: geocoding found no matching place. Not fatal to an import.
	ErrPlaceNotFound = errors.New("no matching place found")
	// ErrServiceFailure: a collaborator (search index, document store) failed.
	ErrServiceFailure = errors.New("collaborator service failure")
	// ErrTimeout: a collaborator call exceeded its deadline.
	ErrTimeout = errors.New("collaborator call timed out")

	ErrEventNotFound   = errors.New("event not found")
	ErrProfileNotFound = errors.New("profile not found")
)
