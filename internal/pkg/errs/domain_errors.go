package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Code pool errors
	ErrNoStock             = errors.New("no codes in stock")
	ErrProducerUnavailable = errors.New("code producer unavailable")

	// Ledger errors
	ErrInsufficientBalance = errors.New("insufficient bonus balance")
	ErrInvalidTransition   = errors.New("invalid order transition")
	ErrDiscountLimit       = errors.New("order discount limit reached")

	// Concurrency errors
	ErrBusy = errors.New("store busy, optimistic retries exhausted")

	// Validation errors
	ErrInvalidPayload = errors.New("invalid payload")

	// Operation errors
	ErrStoreFailure = errors.New("object store operation failed")
)
