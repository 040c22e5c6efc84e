package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chaparral_client",
			Name:      "requests_total",
			Help:      "API requests issued, by operation.",
		},
		[]string{"op"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chaparral_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed, by operation and failure kind.",
		},
		[]string{"op", "kind"},
	)
)
