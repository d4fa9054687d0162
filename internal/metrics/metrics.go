// Package metrics exports per-pass counters in the Prometheus text format,
// for node_exporter's textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"sequniq/internal/dedup"
)

const namespace = "sequniq"

// Pass holds the metrics of one run on a private registry.
type Pass struct {
	reg          *prometheus.Registry
	records      prometheus.Counter
	emitted      prometheus.Counter
	duplicates   *prometheus.CounterVec
	dangling     prometheus.Counter
	fingerprints prometheus.Gauge
	groups       *prometheus.GaugeVec
}

func New(tool string) *Pass {
	labels := prometheus.Labels{"tool": tool}
	p := &Pass{
		reg: prometheus.NewRegistry(),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "records_total",
			Help: "Records read from the input.", ConstLabels: labels,
		}),
		emitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "records_emitted_total",
			Help: "Records written as first occurrences.", ConstLabels: labels,
		}),
		duplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "duplicates_total",
			Help: "Records dropped as duplicates, by matching strand.", ConstLabels: labels,
		}, []string{"kind"}),
		dangling: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "dangling_lines_total",
			Help: "Trailing lines dropped as an incomplete record.", ConstLabels: labels,
		}),
		fingerprints: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "fingerprints",
			Help: "Distinct fingerprints held at the end of the pass.", ConstLabels: labels,
		}),
		groups: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "groups",
			Help: "Identifier groups by size class.", ConstLabels: labels,
		}, []string{"class"}),
	}
	p.reg.MustRegister(p.records, p.emitted, p.duplicates, p.dangling, p.fingerprints, p.groups)
	return p
}

// ObserveFilter records a finished by-record pass.
func (p *Pass) ObserveFilter(s dedup.Stats, dangling int) {
	p.records.Add(float64(s.Records))
	p.emitted.Add(float64(s.Emitted))
	p.duplicates.WithLabelValues("forward").Add(float64(s.Duplicates))
	p.duplicates.WithLabelValues("revcomp").Add(float64(s.ReverseHits))
	p.dangling.Add(float64(dangling))
	p.fingerprints.Set(float64(s.Fingerprints))
}

// ObserveGroups records a finished by-id pass.
func (p *Pass) ObserveGroups(g *dedup.Groups, dangling int) {
	dups, singles := len(g.Duplicates()), len(g.Singletons())
	p.records.Add(float64(g.IDs()))
	p.dangling.Add(float64(dangling))
	p.fingerprints.Set(float64(g.Len()))
	p.groups.WithLabelValues("duplicate").Set(float64(dups))
	p.groups.WithLabelValues("singleton").Set(float64(singles))
}

func (p *Pass) Gatherer() prometheus.Gatherer { return p.reg }

// WriteTextfile atomically writes all metrics to path.
func (p *Pass) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.reg)
}
