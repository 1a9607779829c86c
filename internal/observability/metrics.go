package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics lives on its own registry so a short-lived run can push exactly
// what it recorded.
type Metrics struct {
	Registry       *prometheus.Registry
	ImportsTotal   *prometheus.CounterVec
	StageDuration  *prometheus.HistogramVec
	Reconciliation *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ImportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imports_total",
				Help: "Imports finished, by outcome",
			},
			[]string{"outcome"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "import_stage_duration_seconds",
				Help:    "Time spent in each import stage",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		Reconciliation: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_reconciliations_total",
				Help: "Billing catalog reconciliations, by action taken",
			},
			[]string{"action"},
		),
	}
	m.Registry.MustRegister(m.ImportsTotal, m.StageDuration, m.Reconciliation)
	return m
}

// Push sends the registry to a Pushgateway under the given job name.
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(m.Registry).PushContext(ctx)
}
