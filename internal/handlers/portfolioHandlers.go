package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"homepage/internal/services"
	"homepage/internal/utils"
)

type PortfolioHandler struct {
	service services.PortfolioService
}

func NewPortfolioHandler(service services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

func (h *PortfolioHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	featuredOnly := false
	if v := r.URL.Query().Get("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			utils.SendJSONError(w, "Invalid featured parameter: "+v, http.StatusBadRequest)
			return
		}
		featuredOnly = b
	}

	projects, err := h.service.GetProjects(r.Context(), featuredOnly)
	if err != nil {
		log.Error().Err(err).Msg("Error getting projects from service")
		utils.SendJSONError(w, "Failed to retrieve projects", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"projects": projects})
}
