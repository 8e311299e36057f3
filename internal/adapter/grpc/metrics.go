package grpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dreambox_grpc_requests_total",
		Help: "Total gRPC requests by method and status code",
	}, []string{"method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dreambox_grpc_request_duration_seconds",
		Help:    "gRPC request latency by method",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)
