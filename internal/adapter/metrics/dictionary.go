package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/wordbook/internal/domain"
)

// DictionaryMetrics holds Prometheus metrics for dictionary usage.
type DictionaryMetrics struct {
	Entries        prometheus.Gauge
	Requests       prometheus.Counter
	Lookups        *prometheus.CounterVec
	Definitions    *prometheus.CounterVec
	InvalidEntries *prometheus.CounterVec
}

// NewDictionaryMetrics creates and registers dictionary metrics on the given registry.
func NewDictionaryMetrics(reg prometheus.Registerer) *DictionaryMetrics {
	m := &DictionaryMetrics{
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dictionary",
			Name:      "entries",
			Help:      "Number of entries currently stored.",
		}),
		Requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dictionary",
			Name:      "requests_total",
			Help:      "Total number of requests received, matching the request number.",
		}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dictionary",
			Name:      "lookups_total",
			Help:      "Total number of word lookups, by result (hit/miss).",
		}, []string{"result"}),
		Definitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dictionary",
			Name:      "definitions_total",
			Help:      "Total number of submitted definitions, by outcome.",
		}, []string{"outcome"}),
		InvalidEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dictionary",
			Name:      "invalid_entries_total",
			Help:      "Total number of rejected submissions, by validation reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(m.Entries, m.Requests, m.Lookups, m.Definitions, m.InvalidEntries)
	return m
}

func (m *DictionaryMetrics) RequestReceived() {
	m.Requests.Inc()
}

func (m *DictionaryMetrics) LookupRecorded(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.Lookups.WithLabelValues(result).Inc()
}

func (m *DictionaryMetrics) DefinitionRecorded(outcome domain.DefinitionOutcome, totalEntries int) {
	m.Definitions.WithLabelValues(string(outcome)).Inc()
	m.Entries.Set(float64(totalEntries))
}

func (m *DictionaryMetrics) InvalidEntry(reason string) {
	m.InvalidEntries.WithLabelValues(reason).Inc()
}
