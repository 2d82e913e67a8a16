package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"homepage/internal/metrics"
	"homepage/internal/models"
	"homepage/internal/repositories"
)

var ErrPostNotFound = errors.New("post not found")

type BlogService interface {
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*models.RenderedPost, error)
}

type blogServiceImpl struct {
	postRepo repositories.PostRepository
	md       goldmark.Markdown
}

func NewBlogService(postRepo repositories.PostRepository) BlogService {
	// Raw HTML and JSX in post bodies are omitted by the default renderer.
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &blogServiceImpl{postRepo: postRepo, md: md}
}

// ListPosts returns posts newest first.
func (s *blogServiceImpl) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error finding posts")
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}

	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b models.BlogPost) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return sorted, nil
}

func (s *blogServiceImpl) GetPost(ctx context.Context, slug string) (*models.RenderedPost, error) {
	log.Debug().Str("slug", slug).Msg("Attempting to render post")
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Warn().Str("slug", slug).Msg("Post not found")
			return nil, ErrPostNotFound
		}
		log.Error().Err(err).Str("slug", slug).Msg("Error finding post")
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}

	html, toc, err := s.render([]byte(post.Body))
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Error rendering post")
		return nil, fmt.Errorf("failed to render post: %w", err)
	}

	metrics.BlogPostViewsTotal.WithLabelValues(post.Slug).Inc()
	return &models.RenderedPost{BlogPost: *post, HTML: html, TOC: toc}, nil
}

func (s *blogServiceImpl) render(src []byte) (string, []models.TOCEntry, error) {
	doc := s.md.Parser().Parse(text.NewReader(src))

	toc := []models.TOCEntry{}
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok || h.Level < 2 || h.Level > 3 {
			return ast.WalkContinue, nil
		}
		entry := models.TOCEntry{Level: h.Level, Title: nodeText(h, src)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				entry.ID = string(b)
			}
		}
		toc = append(toc, entry)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := s.md.Renderer().Render(&buf, src, doc); err != nil {
		return "", nil, err
	}
	return buf.String(), toc, nil
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
