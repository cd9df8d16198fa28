package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ComparisonID identifies a single comparison invocation
type ComparisonID ID

// NewComparisonID creates a time-ordered comparison identifier
func NewComparisonID() ComparisonID {
	return ComparisonID(NewID())
}

func (id ComparisonID) String() string { return ID(id).String() }

// ParseComparisonID parses a string into ComparisonID
func ParseComparisonID(s string) (ComparisonID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("comparison ID cannot be empty")
	}
	return ComparisonID(s), nil
}
