package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ExchangeMetrics holds the exchange counters on a private registry.
type ExchangeMetrics struct {
	registry *prometheus.Registry

	QuotesServedTotal       *prometheus.CounterVec
	WizardTransitionsTotal  *prometheus.CounterVec
	SubmissionsTotal        *prometheus.CounterVec
	SubmittedAmountTotal    *prometheus.CounterVec
	AlertsNotifiedTotal     prometheus.Counter
	AlertEvaluationDuration prometheus.Histogram
}

func (m *ExchangeMetrics) QuoteServed(source string) {
	m.QuotesServedTotal.WithLabelValues(source).Inc()
}

func (m *ExchangeMetrics) Transition(from, to string, ok bool) {
	m.WizardTransitionsTotal.WithLabelValues(from, to, strconv.FormatBool(ok)).Inc()
}

// Submission counts attempts; only successful ones add to the amount total.
func (m *ExchangeMetrics) Submission(source string, amount float64, ok bool) {
	m.SubmissionsTotal.WithLabelValues(source, strconv.FormatBool(ok)).Inc()
	if ok {
		m.SubmittedAmountTotal.WithLabelValues(source).Add(amount)
	}
}

func (m *ExchangeMetrics) AlertsNotified(n int) {
	m.AlertsNotifiedTotal.Add(float64(n))
}

func (m *ExchangeMetrics) AlertEvaluation(seconds float64) {
	m.AlertEvaluationDuration.Observe(seconds)
}

func (m *ExchangeMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func NewExchangeMetrics() *ExchangeMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &ExchangeMetrics{
		registry: reg,

		QuotesServedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_quotes_served_total",
				Help: "Conversion quotes served by source currency",
			},
			[]string{"source_currency"},
		),

		WizardTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_wizard_transitions_total",
				Help: "Wizard step transitions attempted",
			},
			[]string{"from", "to", "ok"},
		),

		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_submissions_total",
				Help: "Operation submissions by outcome",
			},
			[]string{"source_currency", "ok"},
		),

		SubmittedAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_submitted_amount_total",
				Help: "Sum of source amounts of registered operations",
			},
			[]string{"source_currency"},
		),

		AlertsNotifiedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_alerts_notified_total",
				Help: "Alerts whose target rate was reached",
			},
		),

		AlertEvaluationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchange_alert_evaluation_duration_seconds",
				Help:    "Time spent evaluating watching alerts",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
		),
	}
}
