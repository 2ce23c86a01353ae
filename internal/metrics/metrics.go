package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kisan_chat_replies_total",
			Help: "Chat replies by source (model, cache, fallback)",
		},
		[]string{"source", "language"},
	)

	FallbackTopics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kisan_chat_fallback_topics_total",
			Help: "Fallback replies by classified topic",
		},
		[]string{"topic"},
	)

	ModelErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kisan_chat_model_errors_total",
			Help: "Failed chat-completion calls that were answered by the fallback responder",
		},
	)

	ModelCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kisan_chat_model_call_duration_seconds",
			Help:    "Duration of chat-completion calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
	)
)
