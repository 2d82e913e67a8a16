package repositories

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"homepage/internal/content"
	"homepage/internal/models"
	"homepage/internal/utils"
)

type PostRepository interface {
	FindAll(ctx context.Context) ([]models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

type postRepository struct {
	content content.Service
}

func NewPostRepository(c content.Service) PostRepository {
	return &postRepository{content: c}
}

func (r *postRepository) FindAll(ctx context.Context) ([]models.BlogPost, error) {
	queryType := "findAll"
	repository := "post"
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
	return r.content.Snapshot().Posts, nil
}

func (r *postRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	queryType := "findBySlug"
	repository := "post"
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
	for _, p := range r.content.Snapshot().Posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	status = "not_found"
	utils.ContentQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
	return nil, ErrNotFound
}
