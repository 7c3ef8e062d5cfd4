// Package ingredient provides the ingredient annotation domain:
// value objects plus the pure text pipeline (notes parsing, quantity
// formatting, display casing) that rendering layers build on
package ingredient

import (
	"errors"

	"github.com/google/uuid"
)

// Ingredient is the read-only record the annotation pipeline consumes.
// Amount, Unit, Preparation, Alternative, Section and BakerPercent are
// free-form strings supplied by the recipe repository; empty means absent.
type Ingredient struct {
	ID           uuid.UUID
	Name         string
	Amount       string
	Unit         string
	Preparation  string
	Alternative  string
	Optional     bool
	Section      string
	BakerPercent string
}

// Validate validates the ingredient record
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name is required")
	}
	return nil
}

// ParsedNotes is the structured result of parsing a free-form notes string.
// Alternative is empty when no substitution marker was found.
type ParsedNotes struct {
	Optional    bool
	Alternative string
	Remaining   string
}
