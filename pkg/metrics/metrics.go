package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Tool pipeline metrics
	ToolSelections      *prometheus.CounterVec
	ToolFailures        *prometheus.CounterVec
	SearchFallbacks     prometheus.Counter
	ClassifierFallbacks prometheus.Counter
	ClassifierLatency   prometheus.Histogram

	// Chat metrics
	ChatRequests       prometheus.Counter
	ChatStreamFailures prometheus.Counter

	// Article metrics
	ArticleReads  prometheus.Counter
	ArticleWrites prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ToolSelections: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_selections_total",
			Help:      "Tool invocations by tool type",
		}, []string{"tool"}),
		ToolFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_failures_total",
			Help:      "Tool invocation failures by tool type",
		}, []string{"tool"}),
		SearchFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_fallbacks_total",
			Help:      "Times the router fell back to web search",
		}),
		ClassifierFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifier_fallbacks_total",
			Help:      "Times the intent classifier returned the default result",
		}),
		ClassifierLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classifier_latency_seconds",
			Help:      "Intent classification latency",
			Buckets:   prometheus.DefBuckets,
		}),
		ChatRequests: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Chat completion requests",
		}),
		ChatStreamFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_stream_failures_total",
			Help:      "Chat completion streams that ended with an error",
		}),
		ArticleReads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_reads_total",
			Help:      "Article list/get operations",
		}),
		ArticleWrites: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_writes_total",
			Help:      "Article publish operations",
		}),
	}
}
