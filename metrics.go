package hateoas

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects FetchPage statistics. Create it once per registry with
// NewMetrics and pass it to FetchPage via WithMetrics.
type Metrics struct {
	// requests counts FetchPage calls.
	// Labels: result (ok, invalid, error), page_range (1-10, 11-50, 51-100, 100+)
	requests *prometheus.CounterVec
	// duration tracks FetchPage duration distribution.
	duration prometheus.Histogram
	// totalElements is the total element count reported by the last fetch.
	totalElements prometheus.Gauge
}

// NewMetrics registers pagination metrics on reg. A nil reg registers on
// prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hateoas_page_fetch_requests_total",
				Help: "Total number of page fetches",
			},
			[]string{"result", "page_range"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hateoas_page_fetch_duration_seconds",
				Help:    "Page fetch duration distribution",
				Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
			},
		),
		totalElements: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hateoas_page_total_elements",
				Help: "Total number of elements reported by the last page fetch",
			},
		),
	}
}

func (m *Metrics) observe(page int, started time.Time, md PageMetadata, err error) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(fetchResult(err), pageRangeBucket(page)).Inc()
	m.duration.Observe(time.Since(started).Seconds())

	if err == nil {
		m.totalElements.Set(float64(md.TotalElements()))
	}
}

func fetchResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid"
	default:
		return "error"
	}
}

// pageRangeBucket buckets a zero-indexed page number.
func pageRangeBucket(page int) string {
	switch {
	case page < 10:
		return "1-10"
	case page < 50:
		return "11-50"
	case page < 100:
		return "51-100"
	default:
		return "100+"
	}
}
