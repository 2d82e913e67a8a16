package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"homepage/internal/metrics"
	"homepage/internal/models"
	"homepage/internal/prompts"
	"homepage/internal/repositories"
)

var ErrPromptNotFound = errors.New("prompt not found")

// PromptService defines the prompt library operations.
type PromptService interface {
	Search(ctx context.Context, criteria models.FilterCriteria) (*models.PromptSearchResult, error)
	GetPromptByID(ctx context.Context, id string) (*models.Prompt, error)
	GenerateBookmarklet(ctx context.Context, id string) (*models.Bookmarklet, error)
	Facets() models.PromptFacets
}

type promptServiceImpl struct {
	promptRepo repositories.PromptRepository
}

func NewPromptService(promptRepo repositories.PromptRepository) PromptService {
	return &promptServiceImpl{promptRepo: promptRepo}
}

func (s *promptServiceImpl) Search(ctx context.Context, criteria models.FilterCriteria) (*models.PromptSearchResult, error) {
	log.Debug().Interface("criteria", criteria).Msg("Searching prompts")
	catalog, err := s.promptRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error loading prompt catalog")
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}

	matched := prompts.Filter(catalog, criteria)

	result := &models.PromptSearchResult{
		Prompts: make([]models.PromptSummary, 0, len(matched)),
		Count:   len(matched),
		Total:   len(catalog),
	}
	for _, p := range matched {
		result.Prompts = append(result.Prompts, p.Summary())
	}

	outcome := "results"
	if result.Count == 0 {
		outcome = "empty"
	}
	metrics.PromptSearchesTotal.WithLabelValues(outcome).Inc()

	log.Debug().Int("count", result.Count).Int("total", result.Total).Msg("Prompt search complete")
	return result, nil
}

func (s *promptServiceImpl) GetPromptByID(ctx context.Context, id string) (*models.Prompt, error) {
	log.Debug().Str("promptID", id).Msg("Attempting to retrieve prompt by ID")
	p, err := s.promptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Warn().Str("promptID", id).Msg("Prompt not found")
			return nil, ErrPromptNotFound
		}
		log.Error().Err(err).Str("promptID", id).Msg("Error finding prompt by ID")
		return nil, fmt.Errorf("failed to retrieve prompt: %w", err)
	}
	return p, nil
}

func (s *promptServiceImpl) GenerateBookmarklet(ctx context.Context, id string) (*models.Bookmarklet, error) {
	p, err := s.GetPromptByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bm := &models.Bookmarklet{
		PromptID: p.ID,
		Title:    p.Title,
		Script:   prompts.Encode(p.Content),
	}
	metrics.BookmarkletsGeneratedTotal.Inc()

	log.Info().Str("promptID", p.ID).Int("script_length", len(bm.Script)).Msg("Bookmarklet generated")
	return bm, nil
}

func (s *promptServiceImpl) Facets() models.PromptFacets {
	facets := models.PromptFacets{
		Categories: []models.Facet{{Value: models.SelectAll, Label: "All Categories"}},
		Platforms:  []models.Facet{{Value: models.SelectAll, Label: "All Platforms"}},
	}
	for _, c := range models.Categories {
		facets.Categories = append(facets.Categories, models.Facet{Value: string(c), Label: c.Label()})
	}
	for _, p := range models.Platforms {
		facets.Platforms = append(facets.Platforms, models.Facet{Value: string(p), Label: p.Label()})
	}
	return facets
}
