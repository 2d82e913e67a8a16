package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homepage/internal/models"
	"homepage/internal/prompts"
)

func TestPromptService_Search(t *testing.T) {
	s := newTestPromptService(t)
	ctx := context.Background()

	t.Run("zero criteria returns the catalog sorted by title", func(t *testing.T) {
		res, err := s.Search(ctx, models.FilterCriteria{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, 3, res.Count)
		ids := make([]string, 0, len(res.Prompts))
		for _, p := range res.Prompts {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"p-agent", "p-lyrics", "p-rust"}, ids)
	})

	t.Run("keyword match", func(t *testing.T) {
		res, err := s.Search(ctx, models.FilterCriteria{Query: "BORROW"})
		require.NoError(t, err)
		require.Len(t, res.Prompts, 1)
		assert.Equal(t, "p-rust", res.Prompts[0].ID)
		assert.Equal(t, 3, res.Total)
	})

	t.Run("category and platform are conjunctive", func(t *testing.T) {
		res, err := s.Search(ctx, models.FilterCriteria{Category: models.CategoryMusic, Platform: models.PlatformClaude})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count)
		assert.NotNil(t, res.Prompts)
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		res, err := s.Search(ctx, models.FilterCriteria{Category: "cooking"})
		require.NoError(t, err)
		assert.Empty(t, res.Prompts)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Search(cctx, models.FilterCriteria{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPromptService_GetPromptByID(t *testing.T) {
	s := newTestPromptService(t)

	p, err := s.GetPromptByID(context.Background(), "p-lyrics")
	require.NoError(t, err)
	assert.Equal(t, "Lyric Writer", p.Title)

	_, err = s.GetPromptByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestPromptService_GenerateBookmarklet(t *testing.T) {
	s := newTestPromptService(t)

	bm, err := s.GenerateBookmarklet(context.Background(), "p-rust")
	require.NoError(t, err)
	assert.Equal(t, "p-rust", bm.PromptID)
	assert.Equal(t, "Rust Mentor", bm.Title)
	assert.Contains(t, bm.Script, prompts.Prelude)

	text, err := prompts.Payload(bm.Script)
	require.NoError(t, err)
	assert.Equal(t, "Teach me Rust ownership.", text)

	_, err = s.GenerateBookmarklet(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestPromptService_Facets(t *testing.T) {
	f := newTestPromptService(t).Facets()

	require.Len(t, f.Categories, len(models.Categories)+1)
	require.Len(t, f.Platforms, len(models.Platforms)+1)
	assert.Equal(t, models.Facet{Value: "all", Label: "All Categories"}, f.Categories[0])
	assert.Equal(t, models.Facet{Value: "agent", Label: "Agent"}, f.Categories[1])
	assert.Equal(t, models.Facet{Value: "claude", Label: "Claude"}, f.Platforms[3])
}
