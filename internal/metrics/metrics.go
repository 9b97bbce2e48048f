// Package metrics holds the Prometheus instruments used across the front
// controller.  All collectors are registered with the global registry, so
// mounting promhttp.Handler() is enough to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PageRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_page_requests_total",
			Help: "Page requests by resolved controller, action, and HTTP status.",
		}, []string{"controller", "action", "code"})

	AjaxCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_ajax_calls_total",
			Help: "AJAX calls by method and outcome (ok, invalid, or error).",
		}, []string{"method", "outcome"})

	FieldErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_form_field_errors_total",
			Help: "Contact-form field validation failures by field name.",
		}, []string{"field"})

	RenderSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "landing_view_render_seconds",
			Help:    "Time spent loading and executing a view template.",
			Buckets: prometheus.DefBuckets,
		}, []string{"view"})
)

func init() {
	prometheus.MustRegister(
		PageRequestsTotal,
		AjaxCallsTotal,
		FieldErrorsTotal,
		RenderSeconds,
	)
}
