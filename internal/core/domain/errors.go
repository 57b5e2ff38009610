package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed document or option.
	// Missing or empty required fields surface as this error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedBatch indicates an import payload is not shaped as a
	// sequence of document-like objects. The whole import is rejected.
	ErrMalformedBatch = errors.New("malformed import batch")

	// ErrUnauthenticated indicates no identity accompanied the request.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden indicates the identity lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

func duplicateIDError(id int) error {
	return fmt.Errorf("%w: duplicate document id %d", ErrInvalidInput, id)
}
