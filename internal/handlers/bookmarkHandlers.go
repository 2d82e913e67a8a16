package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"homepage/internal/services"
	"homepage/internal/utils"
)

type BookmarkHandler struct {
	service services.BookmarkService
}

func NewBookmarksHandler(service services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	tiles, err := h.service.GetTiles(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting tiles from service")
		utils.SendJSONError(w, "Failed to retrieve bookmarks", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"tiles": tiles})
}
