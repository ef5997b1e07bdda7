package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/platewise/backend/internal/ports/inbound"
	apperrors "github.com/platewise/backend/pkg/errors"
)

// maxAudioBytes caps uploaded voice clips at 10 MB
const maxAudioBytes = 10 << 20

// voiceTextRequest is the JSON body for the typed voice-intent path
type voiceTextRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// VoiceSuggestions handles POST /api/v1/voice-suggestions.
// Accepts either multipart form data with an audio file, or a JSON
// body with pre-transcribed text.
func (h *APIHandlers) VoiceSuggestions(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.parseVoiceRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.voice.SuggestFromIntent(r.Context(), *cmd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Voice suggestions generated successfully",
	})
}

func (h *APIHandlers) parseVoiceRequest(r *http.Request) (*inbound.VoiceIntentCommand, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
			return nil, apperrors.NewBadRequestError("invalid multipart form")
		}

		userID, err := uuid.Parse(r.FormValue("userId"))
		if err != nil {
			return nil, apperrors.NewBadRequestError("userId must be a valid UUID")
		}

		file, header, err := r.FormFile("audio")
		if err != nil {
			return nil, apperrors.NewBadRequestError("audio file is required")
		}

		mimeType := r.FormValue("mimeType")
		if mimeType == "" {
			mimeType = header.Header.Get("Content-Type")
		}

		return &inbound.VoiceIntentCommand{
			UserID:   userID,
			Audio:    file,
			Filename: header.Filename,
			MimeType: mimeType,
		}, nil
	}

	var req voiceTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apperrors.NewBadRequestError("invalid request body")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperrors.NewBadRequestError("userId must be a valid UUID")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewValidationError("text is required when no audio is provided")
	}

	return &inbound.VoiceIntentCommand{
		UserID: userID,
		Text:   req.Text,
	}, nil
}
