package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"homepage/internal/models"
	"homepage/internal/repositories"
)

// BookmarkService serves the home page tiles.
type BookmarkService interface {
	GetTiles(ctx context.Context) ([]models.TileView, error)
}

type bookmarkServiceImpl struct {
	tileRepo repositories.TileRepository
}

func NewBookmarkService(tileRepo repositories.TileRepository) BookmarkService {
	return &bookmarkServiceImpl{tileRepo: tileRepo}
}

func (s *bookmarkServiceImpl) GetTiles(ctx context.Context) ([]models.TileView, error) {
	tiles, err := s.tileRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error finding tiles")
		return nil, fmt.Errorf("failed to retrieve tiles: %w", err)
	}

	views := make([]models.TileView, 0, len(tiles))
	dropped := 0
	for _, t := range tiles {
		v := t.View()
		if t.Icon != "" && v.Icon == "" {
			dropped++
		}
		views = append(views, v)
	}
	if dropped > 0 {
		log.Warn().Int("count", dropped).Msg("Dropped tile icons that are not a single emoji")
	}

	log.Debug().Int("count", len(views)).Msg("Successfully retrieved tiles")
	return views, nil
}
