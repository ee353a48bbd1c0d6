// Package noise defines symbols, tunable options, and sentinel errors
// for the trinoise engine.
package noise

import (
	"context"
	"errors"
	"fmt"
)

// Base domain bounds. MaxBase is the largest base whose full period
// base^base still fits in uint64: 15^15 < 2^64, while 16^16 == 2^64.
const (
	MinBase = 2
	MaxBase = 15
)

// Sentinel errors for engine operations.
var (
	// ErrBaseTooSmall is returned for bases below MinBase; digit
	// extraction degenerates for base < 2.
	ErrBaseTooSmall = errors.New("noise: base must be at least 2")

	// ErrBaseOverflow is returned when base^base does not fit in uint64,
	// which would corrupt the period boundary.
	ErrBaseOverflow = errors.New("noise: base^base overflows uint64")

	// ErrRunConjecture is returned in strict mode when a run length
	// outside {0, base-2, base-1} is observed for base > 2.
	ErrRunConjecture = errors.New("noise: run length violates the three-value conjecture")

	// ErrTableTooLarge is returned when a full alignment table would
	// exceed the in-memory cap.
	ErrTableTooLarge = errors.New("noise: alignment table exceeds memory cap")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("noise: invalid option supplied")
)

// Symbol is the three-valued classification of one run.
//
// The numeric encoding (0, 1, 2) is stable and part of the contract:
// callers may persist or render symbols by value.
type Symbol uint8

const (
	// Zero marks a run with no successors.
	Zero Symbol = iota
	// Low marks a run with base-2 successors.
	Low
	// High marks a run with base-1 successors.
	High
)

// String returns the symbol name, or "Symbol(n)" for out-of-range values.
func (s Symbol) String() string {
	switch s {
	case Zero:
		return "Zero"
	case Low:
		return "Low"
	case High:
		return "High"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// Level maps the symbol back to the run-length value it stands for in
// the given base: Zero→0, Low→base-2, High→base-1. This is the thin
// display mapping for rendering noise; it inverts Classify on the
// three values the engine produces.
func (s Symbol) Level(base int) int {
	switch s {
	case Zero:
		return 0
	case Low:
		return base - 2
	default:
		return base - 1
	}
}

// Option configures signature generation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Signature is invoked.
type Option func(*Options)

// Options holds parameters that customize Signature execution.
type Options struct {
	// Ctx allows cancellation of long-running generations. Checked
	// periodically inside the cursor loop, not on every step.
	Ctx context.Context

	// Strict aborts generation with ErrRunConjecture when a run length
	// outside {0, base-2, base-1} is observed for base > 2, instead of
	// silently folding it into High.
	Strict bool

	// Workers > 1 precomputes the full alignment table in parallel
	// before deriving runs. Trades O(base^base) memory for wall-clock
	// speed on large bases.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Strict disabled (the original catch-all behavior)
//   - sequential generation (Workers == 1).
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Strict:  false,
		Workers: 1,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrict enables conjecture checking: any run length outside
// {0, base-2, base-1} for base > 2 aborts with ErrRunConjecture.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithWorkers sets the number of goroutines for the parallel alignment
// precompute.
//
//	n > 1:  precompute the alignment table with n workers
//	n == 1: sequential generation (default)
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Period returns base^base, the exact length of one noise period.
// Returns ErrBaseTooSmall for base < MinBase and ErrBaseOverflow for
// base > MaxBase; the multiplication itself can then never wrap.
//
// Complexity: O(base).
func Period(base int) (uint64, error) {
	if base < MinBase {
		return 0, fmt.Errorf("%w: got %d", ErrBaseTooSmall, base)
	}
	if base > MaxBase {
		return 0, fmt.Errorf("%w: base %d exceeds MaxBase %d", ErrBaseOverflow, base, MaxBase)
	}
	end := uint64(1)
	for i := 0; i < base; i++ {
		end *= uint64(base)
	}

	return end, nil
}
