package repositories

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"homepage/internal/content"
	"homepage/internal/models"
	"homepage/internal/utils"
)

type TileRepository interface {
	FindAll(ctx context.Context) ([]models.BookmarkTile, error)
}

type tileRepository struct {
	content content.Service
}

func NewTileRepository(c content.Service) TileRepository {
	return &tileRepository{content: c}
}

func (r *tileRepository) FindAll(ctx context.Context) ([]models.BookmarkTile, error) {
	queryType := "findAll"
	repository := "tile"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.ContentQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	if err := ctx.Err(); err != nil {
		status = "error"
		utils.ContentQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err
	}
	return r.content.Snapshot().Tiles, nil
}
