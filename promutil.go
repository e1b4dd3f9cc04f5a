package bizarromath

import (
	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
)

// counterValue and gaugeValue read back the current value of a Prometheus
// counter/gauge via its DTO, since the client library deliberately does
// not expose a direct accessor. Used only for Pool.Stats() and tests.

func counterValue(c prometheus.Counter) uint64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return uint64(m.GetCounter().GetValue())
}

func gaugeValue(g prometheus.Gauge) float64 {
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func extractGaugeValue(g prometheus.Gauge) (float64, error) {
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		return 0, err
	}
	return m.GetGauge().GetValue(), nil
}
