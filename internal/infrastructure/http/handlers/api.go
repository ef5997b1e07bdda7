// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/ports/inbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

// APIHandlers handles REST API requests
type APIHandlers struct {
	recommendations inbound.RecommendationService
	suggestions     inbound.SuggestionService
	voice           inbound.VoiceService
	logger          *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	recommendations inbound.RecommendationService,
	suggestions inbound.SuggestionService,
	voice inbound.VoiceService,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		recommendations: recommendations,
		suggestions:     suggestions,
		voice:           voice,
		logger:          logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeError maps an application error to its HTTP response
func (h *APIHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.Wrap(err, "request failed")

	if appErr.StatusCode() >= 500 {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("code", string(appErr.Code)),
			zap.Error(appErr),
		)
	}

	h.writeJSON(w, appErr.StatusCode(), apperrors.ToErrorResponse(appErr, middleware.GetReqID(r.Context())))
}

// parseUserID reads the userId query parameter
func parseUserID(r *http.Request) (uuid.UUID, error) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return uuid.Nil, apperrors.NewBadRequestError("userId is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError("userId must be a valid UUID")
	}
	return id, nil
}

// parseBodyDate parses an optional YYYY-MM-DD date from a request
// body, defaulting to today
func parseBodyDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// parseDate reads the optional date query parameter (YYYY-MM-DD),
// defaulting to today
func parseDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}
