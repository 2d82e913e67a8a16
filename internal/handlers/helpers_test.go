package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"homepage/internal/content"
	"homepage/internal/repositories"
	"homepage/internal/services"
)

func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		content.PromptsFile: {Data: []byte(`{"prompts":[
			{"id":"quote-bot","title":"Quote Bot","content":"Say \"hi\" </script> & 100%","category":"character","platforms":["chatgpt"]},
			{"id":"tutor","title":"Tutor","content":"Explain like I am five.","category":"education","platforms":["claude","gemini"],"keywords":["eli5"]}
		]}`)},
		content.BookmarksFile: {Data: []byte(`{"tiles":[
			{"id":"gh","title":"GitHub","url":"https://github.com","size":"large","color":"#24292e","icon":"🐙"}
		]}`)},
		content.PortfolioFile: {Data: []byte(`{"projects":[
			{"id":"a","title":"A","description":"First","image":"/a.png","tags":["go"],"featured":true},
			{"id":"b","title":"B","description":"Second","image":"/b.png","tags":["js"]}
		]}`)},
		"blog/hello.mdx": {Data: []byte("---\ntitle: Hello\nauthor: Sam\ndate: 2024-01-02\n---\n## Start\n\nHi.\n")},
	}
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	c, err := content.NewFromFS(newTestFS())
	require.NoError(t, err)

	ph := NewPromptHandler(services.NewPromptService(repositories.NewPromptRepository(c)))
	bh := NewBookmarksHandler(services.NewBookmarkService(repositories.NewTileRepository(c)))
	pfh := NewPortfolioHandler(services.NewPortfolioService(repositories.NewProjectRepository(c)))
	blh := NewBlogHandler(services.NewBlogService(repositories.NewPostRepository(c)))
	ch := NewCommonHandler(c)

	r := mux.NewRouter()
	r.HandleFunc("/", ch.HelloWorldHandler)
	r.HandleFunc("/health", ch.HealthHandler)
	r.HandleFunc("/api/prompts", ph.SearchPrompts).Methods("GET")
	r.HandleFunc("/api/prompts/facets", ph.GetFacets).Methods("GET")
	r.HandleFunc("/api/prompts/{id}", ph.GetPromptByID).Methods("GET")
	r.HandleFunc("/api/prompts/{id}/bookmarklet", ph.GetBookmarklet).Methods("GET")
	r.HandleFunc("/api/bookmarks", bh.GetBookmarks).Methods("GET")
	r.HandleFunc("/api/portfolio", pfh.GetProjects).Methods("GET")
	r.HandleFunc("/api/blog", blh.ListPosts).Methods("GET")
	r.HandleFunc("/api/blog/{slug}", blh.GetPost).Methods("GET")
	return r
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
}
