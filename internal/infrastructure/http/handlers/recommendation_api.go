package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "github.com/platewise/backend/pkg/errors"
)

// GetDailyRecommendation handles GET /api/v1/recommendations/daily
func (h *APIHandlers) GetDailyRecommendation(w http.ResponseWriter, r *http.Request) {
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

	rec, err := h.recommendations.GetDaily(r.Context(), userID, date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    rec,
		Message: "Daily recommendation retrieved successfully",
	})
}

// respondRequest is the accept/decline request body
type respondRequest struct {
	Accepted *bool `json:"accepted"`
}

// RespondToRecommendation handles PUT /api/v1/recommendations/{id}/response
func (h *APIHandlers) RespondToRecommendation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("recommendation id must be a valid UUID"))
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if req.Accepted == nil {
		h.writeError(w, r, apperrors.NewValidationError("accepted is required"))
		return
	}

	rec, err := h.recommendations.Respond(r.Context(), id, *req.Accepted)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    rec,
		Message: "Recommendation response recorded",
	})
}
