package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"visionai/internal/domain"
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Generate handles POST /api/generate.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	// An unreadable body is treated like a missing prompt. Prompt length is not capped.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Logger.Debug().Err(err).Msg("generate: invalid payload")
		a.error(w, http.StatusBadRequest, domain.MsgPromptRequired)
		return
	}

	url, err := a.generate(r.Context(), domain.Prompt(req.Prompt))
	switch {
	case err == nil:
		a.json(w, http.StatusOK, generateResponse{ImageURL: url})
	case errors.Is(err, domain.ErrInvalidPrompt):
		a.error(w, http.StatusBadRequest, domain.MsgPromptRequired)
	default:
		a.error(w, http.StatusInternalServerError, domain.MsgGenerationFailed)
	}
}
