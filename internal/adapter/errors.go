package adapter

import "errors"

var (
	// ErrUnauthorized maps HTTP 401 responses.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound maps HTTP 404 responses for aggregate lookups.
	ErrNotFound = errors.New("aggregate not found on server")

	// ErrRejected is returned when the server answers a PATCH with a 2xx
	// status but success=false, or with a 4xx the delta engine should not
	// retry.
	ErrRejected = errors.New("server rejected delta")
)
