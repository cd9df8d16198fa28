package compare

import (
	"fmt"

	"govalue/domain/core"
)

// ValidationErrorKind classifies input validation failures
type ValidationErrorKind string

const (
	InvalidPrice        ValidationErrorKind = "InvalidPrice"
	InvalidReviewCounts ValidationErrorKind = "InvalidReviewCounts"
	InvalidSampleCount  ValidationErrorKind = "InvalidSampleCount"
)

// ValidationError reports a single invalid input field. It wraps the
// matching domain sentinel so callers can dispatch with errors.Is.
type ValidationError struct {
	Kind    ValidationErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case InvalidPrice:
		return core.ErrInvalidPrice
	case InvalidReviewCounts:
		return core.ErrInvalidReviewCounts
	case InvalidSampleCount:
		return core.ErrInvalidSampleCount
	}
	return nil
}

// Validate checks a single product's inputs. All checks run before any
// sampling anywhere; a failure means no partial computation happened.
func Validate(in ProductInput) error {
	return validateField(in, "")
}

// ValidatePair checks both products, reporting the offending product in
// the error's field (product_a.price, product_b.total_reviews, ...).
func ValidatePair(a, b ProductInput) error {
	if err := validateField(a, "product_a."); err != nil {
		return err
	}
	return validateField(b, "product_b.")
}

func validateField(in ProductInput, prefix string) error {
	if in.Price <= 0 {
		return &ValidationError{
			Kind:    InvalidPrice,
			Field:   prefix + "price",
			Message: fmt.Sprintf("price must be > 0, got %g", in.Price),
		}
	}
	if in.TotalReviews < 1 {
		return &ValidationError{
			Kind:    InvalidReviewCounts,
			Field:   prefix + "total_reviews",
			Message: fmt.Sprintf("total_reviews must be >= 1, got %d", in.TotalReviews),
		}
	}
	if in.FiveStar < 0 {
		return &ValidationError{
			Kind:    InvalidReviewCounts,
			Field:   prefix + "five_star",
			Message: fmt.Sprintf("five_star must be >= 0, got %d", in.FiveStar),
		}
	}
	if in.FourStar < 0 {
		return &ValidationError{
			Kind:    InvalidReviewCounts,
			Field:   prefix + "four_star",
			Message: fmt.Sprintf("four_star must be >= 0, got %d", in.FourStar),
		}
	}
	if in.Successes() > in.TotalReviews {
		return &ValidationError{
			Kind:    InvalidReviewCounts,
			Field:   prefix + "total_reviews",
			Message: fmt.Sprintf("five_star + four_star (%d) exceeds total_reviews (%d)", in.Successes(), in.TotalReviews),
		}
	}
	return nil
}

// ValidateSampleCount checks the Monte Carlo draw count
func ValidateSampleCount(n int) error {
	if n <= 0 {
		return &ValidationError{
			Kind:    InvalidSampleCount,
			Field:   "sample_count",
			Message: fmt.Sprintf("sample count must be > 0, got %d", n),
		}
	}
	return nil
}
