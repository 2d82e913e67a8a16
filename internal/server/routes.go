package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homepage/internal/handlers"
	"homepage/internal/middlewares"
)

// RegisterRoutes builds the router and wraps it in the middleware chain.
// The chain sits outside the router so unmatched requests are logged and
// counted; from the outside in: request logger, CORS, metrics, rate limit.
func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	ch := handlers.NewCommonHandler(s.content)
	r.HandleFunc("/", ch.HelloWorldHandler).Methods("GET", "OPTIONS")
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET", "OPTIONS")
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods("GET")

	s.registerPromptRoutes(r)
	s.registerBookmarkRoutes(r)
	s.registerPortfolioRoutes(r)
	s.registerBlogRoutes(r)

	pm := middlewares.NewPrometheusMiddleware(s.registerer).ForRouter(r)

	var h http.Handler = r
	h = s.rateLimiter.Limit(h)
	h = pm.Instrument(h)
	h = middlewares.CorsMiddleware(s.cfg.AllowedOrigins)(h)
	h = middlewares.RequestLogger(h)
	return h
}

func (s *Server) registerPromptRoutes(r *mux.Router) {
	ph := handlers.NewPromptHandler(s.promptService)
	r.HandleFunc("/api/prompts", ph.SearchPrompts).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/prompts/facets", ph.GetFacets).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/prompts/{id}", ph.GetPromptByID).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/prompts/{id}/bookmarklet", ph.GetBookmarklet).Methods("GET", "OPTIONS")
}

func (s *Server) registerBookmarkRoutes(r *mux.Router) {
	bh := handlers.NewBookmarksHandler(s.bookmarkService)
	r.HandleFunc("/api/bookmarks", bh.GetBookmarks).Methods("GET", "OPTIONS")
}

func (s *Server) registerPortfolioRoutes(r *mux.Router) {
	ph := handlers.NewPortfolioHandler(s.portfolioService)
	r.HandleFunc("/api/portfolio", ph.GetProjects).Methods("GET", "OPTIONS")
}

func (s *Server) registerBlogRoutes(r *mux.Router) {
	bh := handlers.NewBlogHandler(s.blogService)
	r.HandleFunc("/api/blog", bh.ListPosts).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/blog/{slug}", bh.GetPost).Methods("GET", "OPTIONS")
}
