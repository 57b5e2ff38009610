package services

import "errors"

// errNoChange lets a mutation skip the write without failing.
var errNoChange = errors.New("no change")

var (
	errStoreNotConfigured  = errors.New("snapshot store not configured")
	errSearchNotConfigured = errors.New("search service not configured")
)
