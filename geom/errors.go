package geom

import "errors"

// Sentinel errors for precondition violations. Nothing in this package
// logs or retries; every failure is reported once to the caller.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidArgument = errors.New("invalid argument")
)
