package handlers

import (
	"net/http"

	"homepage/internal/content"
	"homepage/internal/utils"
)

type CommonHandler struct {
	content content.Service
}

func NewCommonHandler(c content.Service) *CommonHandler {
	return &CommonHandler{content: c}
}

func (h *CommonHandler) HelloWorldHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// HealthHandler reports 503 only when no snapshot was ever loaded; stale
// content is still served.
func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.content == nil || h.content.Snapshot() == nil {
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "content not loaded"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.content.Health())
}
