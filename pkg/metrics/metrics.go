package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "amigdala", Name: "content_saves_total", Help: "Number of section upserts by section key."},
		[]string{"section"},
	)
	MediaUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "amigdala", Name: "media_uploads_total", Help: "Number of media uploads by outcome."},
		[]string{"outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "amigdala", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "amigdala", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentSaves)
	reg.MustRegister(MediaUploads)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
