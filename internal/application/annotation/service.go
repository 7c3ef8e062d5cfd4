// Package annotation provides the application layer for ingredient annotation
// This implements the use cases defined in the inbound ports
package annotation

import (
	"context"
	"strings"

	"github.com/forkful/garnish/internal/domain/ingredient"
	"github.com/forkful/garnish/internal/ports/inbound"
	"go.uber.org/zap"
)

// AnnotationService implements the annotation use cases
type AnnotationService struct {
	logger *zap.Logger
}

// NewAnnotationService creates a new annotation service
func NewAnnotationService(logger *zap.Logger) inbound.AnnotationService {
	return &AnnotationService{
		logger: logger.Named("annotation-service"),
	}
}

// AnnotateIngredient turns one raw ingredient record into its display form.
// The record-level optional flag and the flag parsed from the preparation
// text are OR-ed; an explicit Alternative field wins over a parsed one.
func (s *AnnotationService) AnnotateIngredient(ctx context.Context, cmd inbound.AnnotateIngredientCommand) *inbound.AnnotatedIngredientDTO {
	record := ingredient.Ingredient{
		ID:           cmd.ID,
		Name:         cmd.Name,
		Amount:       cmd.Amount,
		Unit:         cmd.Unit,
		Preparation:  cmd.Preparation,
		Alternative:  cmd.Alternative,
		Optional:     cmd.Optional,
		Section:      cmd.Section,
		BakerPercent: cmd.BakerPercent,
	}

	// An incomplete record still annotates; the pipeline is total
	if err := record.Validate(); err != nil {
		s.logger.Debug("Annotating incomplete ingredient record",
			zap.String("id", record.ID.String()),
			zap.Error(err),
		)
	}

	return s.annotateRecord(record)
}

// annotateRecord runs the pipeline over a domain ingredient record.
func (s *AnnotationService) annotateRecord(record ingredient.Ingredient) *inbound.AnnotatedIngredientDTO {
	parsed := ingredient.ParseNotes(record.Preparation)

	alternative := record.Alternative
	if alternative == "" {
		alternative = parsed.Alternative
	}

	return &inbound.AnnotatedIngredientDTO{
		ID:            record.ID,
		Name:          ingredient.WordCase(record.Name),
		DisplayAmount: displayAmount(record.Amount, record.Unit),
		Notes:         ingredient.SentenceCase(parsed.Remaining),
		Alternative:   alternative,
		Optional:      record.Optional || parsed.Optional,
		Section:       record.Section,
		BakerPercent:  record.BakerPercent,
	}
}

// AnnotateRecipe annotates a full ingredient list and groups the results by
// section. Sections appear in first-seen order; input order is preserved
// within each section. Unsectioned ingredients group under "".
func (s *AnnotationService) AnnotateRecipe(ctx context.Context, cmd inbound.AnnotateRecipeCommand) *inbound.AnnotatedRecipeDTO {
	s.logger.Debug("Annotating recipe ingredients",
		zap.Int("count", len(cmd.Ingredients)),
	)

	result := &inbound.AnnotatedRecipeDTO{Sections: []*inbound.AnnotatedSectionDTO{}}
	index := make(map[string]*inbound.AnnotatedSectionDTO)

	for _, ingCmd := range cmd.Ingredients {
		annotated := s.AnnotateIngredient(ctx, ingCmd)

		section, ok := index[annotated.Section]
		if !ok {
			section = &inbound.AnnotatedSectionDTO{Name: annotated.Section}
			index[annotated.Section] = section
			result.Sections = append(result.Sections, section)
		}
		section.Ingredients = append(section.Ingredients, annotated)
	}

	return result
}

// ParseNotes exposes the raw marker extraction for callers that render the
// pieces themselves.
func (s *AnnotationService) ParseNotes(ctx context.Context, notes string) *inbound.ParsedNotesDTO {
	parsed := ingredient.ParseNotes(notes)

	return &inbound.ParsedNotesDTO{
		Optional:    parsed.Optional,
		Alternative: parsed.Alternative,
		Notes:       parsed.Remaining,
	}
}

// FormatAmount normalizes one amount token for display.
func (s *AnnotationService) FormatAmount(ctx context.Context, amount string) string {
	return ingredient.FormatAmount(amount)
}

// FormatDirection sentence-cases a direction step and rewrites ASCII
// fractions embedded in it.
func (s *AnnotationService) FormatDirection(ctx context.Context, text string) string {
	return ingredient.SentenceCase(ingredient.ReplaceASCIIFractions(strings.TrimSpace(text)))
}

// displayAmount joins the formatted amount and the unit for display. Either
// side may be absent.
func displayAmount(amount, unit string) string {
	formatted := ingredient.FormatAmount(amount)
	unit = strings.TrimSpace(unit)

	switch {
	case formatted == "":
		return unit
	case unit == "":
		return formatted
	default:
		return formatted + " " + unit
	}
}
