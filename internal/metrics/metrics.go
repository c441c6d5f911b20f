package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_fetch_total",
		Help: "Outbound read fetches by source and outcome",
	}, []string{"source", "outcome"})
	FetchDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "registrar_fetch_duration_ms",
		Help:    "Outbound read fetch duration in milliseconds",
		Buckets: []float64{5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	}, []string{"source"})
	StaleLocalitiesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registrar_stale_localities_total",
		Help: "Locality responses discarded because the selected region changed",
	})
	SubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_submissions_total",
		Help: "Collection point submissions by outcome",
	}, []string{"outcome"})
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "registrar_sessions_active",
		Help: "Form sessions held by the HTTP adapter",
	})
)

func init() {
	prometheus.MustRegister(FetchTotal)
	prometheus.MustRegister(FetchDurationMs)
	prometheus.MustRegister(StaleLocalitiesTotal)
	prometheus.MustRegister(SubmissionsTotal)
	prometheus.MustRegister(SessionsActive)
}

// ObserveFetch records one read fetch against source
func ObserveFetch(source string, ms int64, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	FetchTotal.WithLabelValues(source, outcome).Inc()
	FetchDurationMs.WithLabelValues(source).Observe(float64(ms))
}

// Handler exposes the registered metrics for scraping
func Handler() http.Handler { return promhttp.Handler() }
