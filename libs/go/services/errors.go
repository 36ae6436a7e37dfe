package services

import (
	"errors"
	"fmt"
)

// ErrNoRouteFound is returned when no provider can serve a conversion,
// directly or through an intermediate token.
var ErrNoRouteFound = errors.New("no conversion route found")

// ErrInvalidSlippage is returned when a slippage tolerance is outside the
// valid basis point range [0, 10000].
var ErrInvalidSlippage = errors.New("slippage tolerance out of range")

// ErrSlippageExceeded marks a conversion whose realized output fell below the
// plan's minimum acceptable output.
var ErrSlippageExceeded = errors.New("realized output below minimum acceptable output")

// ErrUnknownProvider is returned when a plan references a provider that is
// not registered with the executor.
var ErrUnknownProvider = errors.New("unknown provider")

// ErrInvalidDestination is returned when the destination address fails
// validation before execution starts.
var ErrInvalidDestination = errors.New("invalid destination address")

// ExecutionError reports a failed conversion execution. HopIndex is the
// zero-based index of the hop that failed; completed hops stay completed.
type ExecutionError struct {
	HopIndex int
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("conversion failed at hop %d: %v", e.HopIndex, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
