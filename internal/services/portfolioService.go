package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"homepage/internal/models"
	"homepage/internal/repositories"
)

type PortfolioService interface {
	GetProjects(ctx context.Context, featuredOnly bool) ([]models.Project, error)
}

type portfolioServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewPortfolioService(projectRepo repositories.ProjectRepository) PortfolioService {
	return &portfolioServiceImpl{projectRepo: projectRepo}
}

// GetProjects keeps the order of the portfolio data file.
func (s *portfolioServiceImpl) GetProjects(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error finding projects")
		return nil, fmt.Errorf("failed to retrieve projects: %w", err)
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}

	log.Debug().Bool("featured_only", featuredOnly).Int("count", len(out)).Msg("Successfully retrieved projects")
	return out, nil
}
