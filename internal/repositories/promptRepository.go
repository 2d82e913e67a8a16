package repositories

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"homepage/internal/content"
	"homepage/internal/models"
	"homepage/internal/utils"
)

var ErrNotFound = errors.New("not found")

type PromptRepository interface {
	FindAll(ctx context.Context) ([]models.Prompt, error)
	FindByID(ctx context.Context, id string) (*models.Prompt, error)
}

type promptRepository struct {
	content content.Service
}

func NewPromptRepository(c content.Service) PromptRepository {
	return &promptRepository{content: c}
}

// FindAll returns the catalog of the current snapshot. Callers must not modify it.
func (r *promptRepository) FindAll(ctx context.Context) ([]models.Prompt, error) {
	queryType := "findAll"
	repository := "prompt"
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
	return r.content.Snapshot().Prompts, nil
}

func (r *promptRepository) FindByID(ctx context.Context, id string) (*models.Prompt, error) {
	queryType := "findByID"
	repository := "prompt"
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
	for _, p := range r.content.Snapshot().Prompts {
		if p.ID == id {
			return &p, nil
		}
	}
	status = "not_found"
	utils.ContentQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
	return nil, ErrNotFound
}
