package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Content Metrics
	ContentReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_content_reloads_total",
		Help: "Total number of content loads (successful and failed).",
	}, []string{"status"}) // status: "success" or "failed"
	ContentItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "app_content_items",
		Help: "Number of items in the current content snapshot.",
	}, []string{"kind"})

	// Application-Specific Feature Usage Metrics
	PromptSearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_prompt_searches_total",
		Help: "Total number of prompt searches.",
	}, []string{"outcome"}) // outcome: "results" or "empty"
	BookmarkletsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_bookmarklets_generated_total",
		Help: "Total number of bookmarklets generated.",
	})
	BlogPostViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_blog_post_views_total",
		Help: "Total number of rendered blog post views.",
	}, []string{"slug"})
)
