package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	apperrors "github.com/platewise/backend/pkg/errors"
)

// GetSuggestions handles GET /api/v1/suggestions
func (h *APIHandlers) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	date, err := parseDate(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	force := r.URL.Query().Get("forceRegenerate") == "true"

	batch, err := h.suggestions.GetSuggestions(r.Context(), userID, date, force)
	if err != nil {
		h.writeSuggestionError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    batch,
		Message: "Suggestions retrieved successfully",
	})
}

// regenerateRequest is the regeneration request body
type regenerateRequest struct {
	UserID string `json:"userId"`
	Date   string `json:"date,omitempty"`
}

// RegenerateSuggestions handles POST /api/v1/suggestions/regenerate
func (h *APIHandlers) RegenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	var req regenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid request body"))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("userId must be a valid UUID"))
		return
	}

	date, err := parseBodyDate(req.Date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	batch, err := h.suggestions.GetSuggestions(r.Context(), userID, date, true)
	if err != nil {
		h.writeSuggestionError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    batch,
		Message: "Suggestions regenerated successfully",
	})
}

// limitResponse is the 429 body shape clients key off of to disable
// their regenerate button
type limitResponse struct {
	Success      bool   `json:"success"`
	Error        string `json:"error"`
	LimitReached bool   `json:"limitReached"`
}

// writeSuggestionError writes suggestion errors, giving the
// regeneration limit its dedicated body shape
func (h *APIHandlers) writeSuggestionError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.Is(err, apperrors.CodeRegenerationLimit) {
		appErr := apperrors.Wrap(err, "")
		h.writeJSON(w, http.StatusTooManyRequests, limitResponse{
			Success:      false,
			Error:        appErr.Message,
			LimitReached: true,
		})
		return
	}
	h.writeError(w, r, err)
}
