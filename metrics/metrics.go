package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "site_http_requests_total", Help: "Total HTTP requests by method and status class"},
		[]string{"method", "status"},
	)
	EmailsSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "site_emails_sent_total", Help: "Total transactional emails dispatched"},
	)
	EmailsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "site_emails_failed_total", Help: "Total transactional email dispatch failures"},
	)
	AssetUploads = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "site_asset_uploads_total", Help: "Total assets uploaded to the bucket"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, EmailsSent, EmailsFailed, AssetUploads)
}
