// Package metrics provides centralized Prometheus metrics for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ArticleOperationsTotal counts store operations by kind and outcome.
	ArticleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_article_operations_total",
			Help: "Total number of article store operations",
		},
		[]string{"operation", "status"},
	)

	// UploadsTotal counts media uploads by outcome.
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_uploads_total",
			Help: "Total number of media uploads",
		},
		[]string{"status"},
	)

	// UploadBytes measures accepted upload payload sizes.
	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsdesk_upload_bytes",
			Help:    "Size of accepted upload payloads in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)
)

// RecordArticleOperation records the outcome of a store operation.
func RecordArticleOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	ArticleOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordUpload records the outcome of a media upload.
func RecordUpload(size int64, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	UploadsTotal.WithLabelValues(status).Inc()
	if err == nil {
		UploadBytes.Observe(float64(size))
	}
}
