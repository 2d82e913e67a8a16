package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloWorldHandler(t *testing.T) {
	rr := doGet(t, newTestRouter(t), "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	rr := doGet(t, newTestRouter(t), "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var health map[string]string
	decodeBody(t, rr, &health)
	assert.Equal(t, "It's healthy", health["message"])
	assert.Equal(t, "2", health["prompts"])
	assert.Equal(t, "1", health["posts"])
}

func TestHealthHandler_NoContent(t *testing.T) {
	h := NewCommonHandler(nil)
	rr := doGet(t, http.HandlerFunc(h.HealthHandler), "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGetBookmarks(t *testing.T) {
	rr := doGet(t, newTestRouter(t), "/api/bookmarks")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Tiles []struct {
			ID   string `json:"id"`
			Icon string `json:"icon"`
		} `json:"tiles"`
	}
	decodeBody(t, rr, &body)
	require.Len(t, body.Tiles, 1)
	assert.Equal(t, "gh", body.Tiles[0].ID)
	assert.Equal(t, "🐙", body.Tiles[0].Icon)
}

func TestGetProjects(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		target   string
		wantCode int
		wantLen  int
	}{
		{"/api/portfolio", http.StatusOK, 2},
		{"/api/portfolio?featured=true", http.StatusOK, 1},
		{"/api/portfolio?featured=false", http.StatusOK, 2},
		{"/api/portfolio?featured=maybe", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := doGet(t, r, tt.target)
			require.Equal(t, tt.wantCode, rr.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var body struct {
				Projects []map[string]any `json:"projects"`
			}
			decodeBody(t, rr, &body)
			assert.Len(t, body.Projects, tt.wantLen)
		})
	}
}

func TestBlogRoutes(t *testing.T) {
	r := newTestRouter(t)

	rr := doGet(t, r, "/api/blog")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"slug":"hello"`)
	assert.NotContains(t, rr.Body.String(), "Hi.")

	rr = doGet(t, r, "/api/blog/hello")
	require.Equal(t, http.StatusOK, rr.Code)
	var post struct {
		Title string `json:"title"`
		HTML  string `json:"html"`
		TOC   []struct {
			ID string `json:"id"`
		} `json:"toc"`
	}
	decodeBody(t, rr, &post)
	assert.Equal(t, "Hello", post.Title)
	assert.Contains(t, post.HTML, `<h2 id="start">Start</h2>`)
	require.Len(t, post.TOC, 1)
	assert.Equal(t, "start", post.TOC[0].ID)

	rr = doGet(t, r, "/api/blog/missing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
