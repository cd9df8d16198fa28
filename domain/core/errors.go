package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidReviewCounts = errors.New("invalid review counts")
	ErrInvalidSampleCount  = errors.New("invalid sample count")

	// Input errors
	ErrEmptyInput = errors.New("empty input")
)

// Error constructors with context
func NewInvalidPriceError(price float64) error {
	return fmt.Errorf("%w: price must be > 0, got %g", ErrInvalidPrice, price)
}

func NewInvalidReviewCountsError(successes, total int) error {
	return fmt.Errorf("%w: five_star + four_star (%d) exceeds total_reviews (%d)", ErrInvalidReviewCounts, successes, total)
}

func NewInvalidSampleCountError(n int) error {
	return fmt.Errorf("%w: sample count must be > 0, got %d", ErrInvalidSampleCount, n)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidReviewCounts) ||
		errors.Is(err, ErrInvalidSampleCount)
}
