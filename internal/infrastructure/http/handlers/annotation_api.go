// Package handlers provides HTTP handlers for the annotation REST API
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/forkful/garnish/internal/ports/inbound"
	apperrors "github.com/forkful/garnish/pkg/errors"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnnotationHandlers handles annotation API requests
type AnnotationHandlers struct {
	service  inbound.AnnotationService
	logger   *zap.Logger
	validate *validator.Validate
}

// NewAnnotationHandlers creates a new annotation handlers instance
func NewAnnotationHandlers(service inbound.AnnotationService, logger *zap.Logger) *AnnotationHandlers {
	return &AnnotationHandlers{
		service:  service,
		logger:   logger,
		validate: validator.New(),
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// IngredientRequest is the wire form of one raw ingredient record
type IngredientRequest struct {
	ID           string `json:"id" validate:"omitempty,uuid4"`
	Name         string `json:"name" validate:"required,max=200"`
	Amount       string `json:"amount" validate:"max=50"`
	Unit         string `json:"unit" validate:"max=50"`
	Preparation  string `json:"preparation" validate:"max=500"`
	Alternative  string `json:"alternative" validate:"max=200"`
	Optional     bool   `json:"optional"`
	Section      string `json:"section" validate:"max=100"`
	BakerPercent string `json:"baker_percent" validate:"max=20"`
}

// RecipeRequest is the wire form of a recipe's ingredient list
type RecipeRequest struct {
	Ingredients []IngredientRequest `json:"ingredients" validate:"required,max=500,dive"`
}

// NotesRequest carries a raw notes string
type NotesRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

// AmountRequest carries a raw amount string
type AmountRequest struct {
	Amount string `json:"amount" validate:"max=50"`
}

// DirectionRequest carries one direction step
type DirectionRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

// AnnotateIngredient handles POST /api/v1/annotate/ingredient
func (h *AnnotationHandlers) AnnotateIngredient(w http.ResponseWriter, r *http.Request) {
	var req IngredientRequest
	if appErr := h.decode(r, &req); appErr != nil {
		h.writeError(w, r, appErr)
		return
	}

	result := h.service.AnnotateIngredient(r.Context(), toCommand(req))

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Ingredient annotated successfully",
	})
}

// AnnotateRecipe handles POST /api/v1/annotate/recipe
func (h *AnnotationHandlers) AnnotateRecipe(w http.ResponseWriter, r *http.Request) {
	var req RecipeRequest
	if appErr := h.decode(r, &req); appErr != nil {
		h.writeError(w, r, appErr)
		return
	}

	cmd := inbound.AnnotateRecipeCommand{
		Ingredients: make([]inbound.AnnotateIngredientCommand, 0, len(req.Ingredients)),
	}
	for _, ing := range req.Ingredients {
		cmd.Ingredients = append(cmd.Ingredients, toCommand(ing))
	}

	result := h.service.AnnotateRecipe(r.Context(), cmd)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Recipe annotated successfully",
	})
}

// ParseNotes handles POST /api/v1/parse/notes
func (h *AnnotationHandlers) ParseNotes(w http.ResponseWriter, r *http.Request) {
	var req NotesRequest
	if appErr := h.decode(r, &req); appErr != nil {
		h.writeError(w, r, appErr)
		return
	}

	result := h.service.ParseNotes(r.Context(), req.Notes)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Notes parsed successfully",
	})
}

// FormatAmount handles POST /api/v1/format/amount
func (h *AnnotationHandlers) FormatAmount(w http.ResponseWriter, r *http.Request) {
	var req AmountRequest
	if appErr := h.decode(r, &req); appErr != nil {
		h.writeError(w, r, appErr)
		return
	}

	formatted := h.service.FormatAmount(r.Context(), req.Amount)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]string{"amount": formatted},
		Message: "Amount formatted successfully",
	})
}

// FormatDirection handles POST /api/v1/format/direction
func (h *AnnotationHandlers) FormatDirection(w http.ResponseWriter, r *http.Request) {
	var req DirectionRequest
	if appErr := h.decode(r, &req); appErr != nil {
		h.writeError(w, r, appErr)
		return
	}

	formatted := h.service.FormatDirection(r.Context(), req.Text)

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]string{"text": formatted},
		Message: "Direction formatted successfully",
	})
}

// toCommand maps a wire record to the inbound command. An absent or invalid
// ID gets a fresh one; the record already passed uuid4 validation.
func toCommand(req IngredientRequest) inbound.AnnotateIngredientCommand {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		id = uuid.New()
	}

	return inbound.AnnotateIngredientCommand{
		ID:           id,
		Name:         req.Name,
		Amount:       req.Amount,
		Unit:         req.Unit,
		Preparation:  req.Preparation,
		Alternative:  req.Alternative,
		Optional:     req.Optional,
		Section:      req.Section,
		BakerPercent: req.BakerPercent,
	}
}

// decode unmarshals and validates a JSON request body
func (h *AnnotationHandlers) decode(r *http.Request, dst interface{}) *apperrors.AppError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewBadRequestError("Invalid JSON body").WithCause(err)
	}

	if err := h.validate.Struct(dst); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.NewValidationError(err.Error())
		}

		errs := make([]apperrors.ValidationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			errs = append(errs, apperrors.ValidationError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: fmt.Sprintf("field %s failed on the %s rule", fe.Field(), fe.Tag()),
			})
		}
		return apperrors.NewValidationErrors(errs)
	}

	return nil
}

// writeJSON writes a JSON response
func (h *AnnotationHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError writes a structured error response
func (h *AnnotationHandlers) writeError(w http.ResponseWriter, r *http.Request, appErr *apperrors.AppError) {
	h.logger.Warn("Request rejected",
		zap.String("path", r.URL.Path),
		zap.String("code", string(appErr.Code)),
		zap.Error(appErr),
	)

	h.writeJSON(w, appErr.StatusCode(), apperrors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context())))
}
