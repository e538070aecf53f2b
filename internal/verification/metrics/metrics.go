package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Verification outcomes by eligibility
	VerificationOutcome *prometheus.CounterVec

	// MRZ decode results by detected format
	MRZDecodeFormat *prometheus.CounterVec

	// Overall verification latency
	VerifyLatency prometheus.Histogram
}

// New creates a Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		VerificationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attesto_verification_outcomes_total",
			Help: "Total verification outcomes by eligibility",
		}, []string{"eligible"}),

		MRZDecodeFormat: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attesto_verification_mrz_decodes_total",
			Help: "Total MRZ decode attempts by detected format",
		}, []string{"format"}), // format: "td1", "td3", "none"

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "attesto_verification_verify_duration_seconds",
			Help:    "Duration of a full verification pass",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementOutcome records a verification outcome.
func (m *Metrics) IncrementOutcome(eligible string) {
	if m != nil {
		m.VerificationOutcome.WithLabelValues(eligible).Inc()
	}
}

// IncrementDecode records an MRZ decode attempt by detected format.
func (m *Metrics) IncrementDecode(format string) {
	if m != nil {
		m.MRZDecodeFormat.WithLabelValues(format).Inc()
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}
