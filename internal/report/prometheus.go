package report

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// Prometheus exposes the latest gauges and service check statuses, and
// counts events.
type Prometheus struct {
	gauges *prometheus.GaugeVec
	checks *prometheus.GaugeVec
	events *prometheus.CounterVec
}

func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "endpoint_probe_gauge",
			Help: "Latest value of a probe gauge such as <type>.response_time.",
		}, []string{"name", "tags"}),
		checks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "endpoint_probe_service_check",
			Help: "Latest service check status (0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN).",
		}, []string{"name", "tags"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "endpoint_probe_events_total",
			Help: "The total number of events emitted by probes.",
		}, []string{"event_type", "severity"}),
	}
	for _, c := range []prometheus.Collector{p.gauges, p.checks, p.events} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return p, nil
}

func (p *Prometheus) EmitEvent(ctx context.Context, e domain.Event) error {
	p.events.WithLabelValues(e.EventType, string(e.Severity)).Inc()
	return nil
}

func (p *Prometheus) EmitServiceCheck(ctx context.Context, sc domain.ServiceCheck) error {
	p.checks.WithLabelValues(sc.Name, JoinTags(sc.Tags)).Set(float64(sc.Status))
	return nil
}

func (p *Prometheus) EmitGauge(ctx context.Context, g domain.Gauge) error {
	p.gauges.WithLabelValues(g.Name, JoinTags(g.Tags)).Set(g.Value)
	return nil
}

var _ Reporter = (*Prometheus)(nil)
