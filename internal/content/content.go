package content

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"homepage/internal/metrics"
)

// Service hands out the current content snapshot. Snapshots are immutable;
// Reload replaces the current one atomically.
type Service interface {
	Health() map[string]string
	Snapshot() *Snapshot
	Reload() error
}

type service struct {
	fsys    fs.FS
	current atomic.Pointer[Snapshot]

	mu      sync.Mutex
	lastErr error
}

// New loads the content root at dir.
func New(dir string) (Service, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", dir)
	}
	return NewFromFS(os.DirFS(dir))
}

func NewFromFS(fsys fs.FS) (Service, error) {
	s := &service{fsys: fsys}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload keeps the previous snapshot when the new content fails validation.
func (s *service) Reload() error {
	snap, err := Load(s.fsys)

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		metrics.ContentReloadsTotal.WithLabelValues("failed").Inc()
		log.Error().Err(err).Msg("Content load failed")
		return err
	}

	s.current.Store(snap)
	metrics.ContentReloadsTotal.WithLabelValues("success").Inc()
	metrics.ContentItems.WithLabelValues("prompts").Set(float64(len(snap.Prompts)))
	metrics.ContentItems.WithLabelValues("tiles").Set(float64(len(snap.Tiles)))
	metrics.ContentItems.WithLabelValues("projects").Set(float64(len(snap.Projects)))
	metrics.ContentItems.WithLabelValues("posts").Set(float64(len(snap.Posts)))

	log.Info().
		Int("prompts", len(snap.Prompts)).
		Int("tiles", len(snap.Tiles)).
		Int("projects", len(snap.Projects)).
		Int("posts", len(snap.Posts)).
		Msg("Content loaded")
	return nil
}

func (s *service) Health() map[string]string {
	snap := s.Snapshot()

	s.mu.Lock()
	lastErr := s.lastErr
	s.mu.Unlock()

	if snap == nil {
		return map[string]string{
			"message": "content not loaded",
		}
	}

	stats := map[string]string{
		"message":   "It's healthy",
		"prompts":   strconv.Itoa(len(snap.Prompts)),
		"tiles":     strconv.Itoa(len(snap.Tiles)),
		"projects":  strconv.Itoa(len(snap.Projects)),
		"posts":     strconv.Itoa(len(snap.Posts)),
		"loaded_at": snap.LoadedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if lastErr != nil {
		stats["message"] = "content stale"
		stats["error"] = lastErr.Error()
	}
	return stats
}
