// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// AnnotationService defines the use cases for ingredient and direction
// annotation. This is the primary port that HTTP handlers and other driving
// adapters use; implementations are pure text transformations and never fail.
type AnnotationService interface {
	AnnotateIngredient(ctx context.Context, cmd AnnotateIngredientCommand) *AnnotatedIngredientDTO
	AnnotateRecipe(ctx context.Context, cmd AnnotateRecipeCommand) *AnnotatedRecipeDTO
	ParseNotes(ctx context.Context, notes string) *ParsedNotesDTO
	FormatAmount(ctx context.Context, amount string) string
	FormatDirection(ctx context.Context, text string) string
}

// Command objects for operations

// AnnotateIngredientCommand carries one raw ingredient record
type AnnotateIngredientCommand struct {
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

// AnnotateRecipeCommand carries a recipe's full ingredient list
type AnnotateRecipeCommand struct {
	Ingredients []AnnotateIngredientCommand
}

// DTOs for data transfer to driving adapters

// AnnotatedIngredientDTO is the display-ready form of one ingredient
type AnnotatedIngredientDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DisplayAmount string    `json:"display_amount,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Alternative   string    `json:"alternative,omitempty"`
	Optional      bool      `json:"optional"`
	Section       string    `json:"section,omitempty"`
	BakerPercent  string    `json:"baker_percent,omitempty"`
}

// AnnotatedSectionDTO groups annotated ingredients under a section heading.
// Unsectioned ingredients group under an empty name.
type AnnotatedSectionDTO struct {
	Name        string                    `json:"name"`
	Ingredients []*AnnotatedIngredientDTO `json:"ingredients"`
}

// AnnotatedRecipeDTO is the batch annotation result
type AnnotatedRecipeDTO struct {
	Sections []*AnnotatedSectionDTO `json:"sections"`
}

// ParsedNotesDTO exposes the raw notes parse result
type ParsedNotesDTO struct {
	Optional    bool   `json:"optional"`
	Alternative string `json:"alternative,omitempty"`
	Notes       string `json:"notes"`
}
