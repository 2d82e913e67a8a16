package repositories

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"homepage/internal/content"
	"homepage/internal/models"
	"homepage/internal/utils"
)

type ProjectRepository interface {
	FindAll(ctx context.Context) ([]models.Project, error)
}

type projectRepository struct {
	content content.Service
}

func NewProjectRepository(c content.Service) ProjectRepository {
	return &projectRepository{content: c}
}

func (r *projectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	queryType := "findAll"
	repository := "project"
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
	return r.content.Snapshot().Projects, nil
}
