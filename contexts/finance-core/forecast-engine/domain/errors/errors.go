package errors

import "errors"

var (
	ErrInvalidInput           = errors.New("workspace input is invalid")
	ErrInvalidCycleKey        = errors.New("cycle key must match YYYY-MM")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrIdempotencyConflict    = errors.New("idempotency key already used with different payload")
	ErrGoalNotFound           = errors.New("goal not found")
	ErrConflict               = errors.New("workspace record conflict")
)
