package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"homepage/internal/services"
	"homepage/internal/utils"
)

type BlogHandler struct {
	service services.BlogService
}

func NewBlogHandler(service services.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing posts from service")
		utils.SendJSONError(w, "Failed to retrieve posts", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug, err := utils.GetVar(w, r, "slug")
	if err != nil {
		return
	}

	post, err := h.service.GetPost(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			utils.SendJSONError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("slug", slug).Msg("Error getting post from service")
		utils.SendJSONError(w, "Failed to retrieve post", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}
