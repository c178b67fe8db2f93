package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters recorded by a shell session.
// Each instance owns a private registry so sessions never share state.
type Metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	blank    prometheus.Counter
}

// NewMetrics creates and registers the session metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assistant_commands_total",
				Help: "Total number of dispatched commands",
			},
			[]string{"command", "outcome"},
		),
		blank: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assistant_blank_lines_total",
			Help: "Total number of blank input lines skipped without dispatch",
		}),
	}
	m.registry.MustRegister(m.commands, m.blank)
	return m
}

// RecordCommand counts one dispatched command.
func (m *Metrics) RecordCommand(command, outcome string) {
	m.commands.WithLabelValues(command, outcome).Inc()
}

// RecordBlankLine counts one skipped blank line.
func (m *Metrics) RecordBlankLine() {
	m.blank.Inc()
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Snapshot returns command totals keyed by "command/outcome".
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	totals := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "assistant_commands_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			var command, outcome string
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case "command":
					command = lp.GetValue()
				case "outcome":
					outcome = lp.GetValue()
				}
			}
			totals[command+"/"+outcome] = metric.GetCounter().GetValue()
		}
	}
	return totals, nil
}
