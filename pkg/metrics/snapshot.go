package metrics

import (
	"fmt"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
)

// Sample is one gathered series flattened to a name and a value.
// Histograms report their sample count.
type Sample struct {
	Name  string
	Value float64
}

// Snapshot gathers every series of the manager's registry, sorted by name.
func (m *Manager) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatherFailed, err)
	}

	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			out = append(out, Sample{
				Name:  seriesName(mf.GetName(), metric.GetLabel()),
				Value: sampleValue(mf.GetType(), metric),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func seriesName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, len(labels))
	for i, lp := range labels {
		parts[i] = fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}

func sampleValue(t dto.MetricType, metric *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(metric.GetHistogram().GetSampleCount())
	default:
		return metric.GetUntyped().GetValue()
	}
}
