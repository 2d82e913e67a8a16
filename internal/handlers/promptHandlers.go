package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"homepage/internal/models"
	"homepage/internal/services"
	"homepage/internal/utils"
)

type PromptHandler struct {
	service services.PromptService
}

func NewPromptHandler(service services.PromptService) *PromptHandler {
	return &PromptHandler{service: service}
}

// SearchPrompts serves GET /api/prompts?q=&category=&platform=.
func (h *PromptHandler) SearchPrompts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := models.FilterCriteria{
		Query:    q.Get("q"),
		Category: models.Category(q.Get("category")),
		Platform: models.Platform(q.Get("platform")),
	}

	result, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		log.Error().Err(err).Msg("Error searching prompts via service")
		utils.SendJSONError(w, "Failed to search prompts", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

func (h *PromptHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.service.Facets())
}

func (h *PromptHandler) GetPromptByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetVar(w, r, "id")
	if err != nil {
		return
	}

	prompt, err := h.service.GetPromptByID(r.Context(), id)
	if err != nil {
		h.sendPromptError(w, id, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, prompt)
}

// GetBookmarklet returns the bookmarklet as JSON, or as the bare script
// when format=text.
func (h *PromptHandler) GetBookmarklet(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetVar(w, r, "id")
	if err != nil {
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "text" {
		utils.SendJSONError(w, "Invalid format parameter: "+format, http.StatusBadRequest)
		return
	}

	bm, err := h.service.GenerateBookmarklet(r.Context(), id)
	if err != nil {
		h.sendPromptError(w, id, err)
		return
	}

	if format == "text" {
		utils.RespondWithText(w, http.StatusOK, bm.Script)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bm)
}

func (h *PromptHandler) sendPromptError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, services.ErrPromptNotFound) {
		utils.SendJSONError(w, "Prompt not found", http.StatusNotFound)
		return
	}
	log.Error().Err(err).Str("promptID", id).Msg("Error retrieving prompt via service")
	utils.SendJSONError(w, "Failed to retrieve prompt", http.StatusInternalServerError)
}
