package metric

import (
	"strings"

	"github.com/riskibarqy/player-insights/internal/domain/player"
)

// Kind tells base columns apart from derived metrics.
type Kind string

const (
	KindBase    Kind = "base"
	KindDerived Kind = "derived"
)

// Metric is a numeric value that can be read from any record of a dataset.
type Metric struct {
	Name  string
	Kind  Kind
	value func(player.Record) float64
}

// Value reads the metric from r.
func (m Metric) Value(r player.Record) float64 {
	if m.value == nil {
		return 0
	}
	return m.value(r)
}

// Registry is the closed set of metrics selectable for one dataset: the
// numeric columns it carries plus the derived metrics computed for it.
type Registry struct {
	metrics []Metric
	byName  map[string]int
	byFold  map[string]int
}

// NewRegistry builds the registry for ds.
func NewRegistry(ds *player.Dataset) *Registry {
	reg := &Registry{
		byName: make(map[string]int),
		byFold: make(map[string]int),
	}
	if ds == nil {
		return reg
	}

	for _, column := range ds.Columns() {
		s, ok := player.LookupStat(column)
		if !ok {
			continue
		}
		reg.add(Metric{Name: s.Column, Kind: KindBase, value: s.Value})
	}
	for _, name := range ds.DerivedMetrics() {
		derivedName := name
		reg.add(Metric{
			Name: derivedName,
			Kind: KindDerived,
			value: func(r player.Record) float64 {
				v, _ := r.Derived(derivedName)
				return v
			},
		})
	}

	return reg
}

func (reg *Registry) add(m Metric) {
	if _, exists := reg.byName[m.Name]; exists {
		return
	}
	reg.byName[m.Name] = len(reg.metrics)
	fold := strings.ToLower(m.Name)
	if _, exists := reg.byFold[fold]; !exists {
		reg.byFold[fold] = len(reg.metrics)
	}
	reg.metrics = append(reg.metrics, m)
}

// Lookup resolves name to a metric. Exact names win over case-insensitive
// matches, which win over raw column abbreviations such as "Gls".
func (reg *Registry) Lookup(name string) (Metric, error) {
	trimmed := strings.TrimSpace(name)
	if idx, ok := reg.byName[trimmed]; ok {
		return reg.metrics[idx], nil
	}
	if idx, ok := reg.byFold[strings.ToLower(trimmed)]; ok {
		return reg.metrics[idx], nil
	}
	if column, ok := player.CanonicalColumn(trimmed); ok {
		if idx, ok := reg.byName[column]; ok {
			return reg.metrics[idx], nil
		}
	}
	return Metric{}, &UnknownMetricError{Name: name}
}

// Metrics returns every selectable metric, base columns first.
func (reg *Registry) Metrics() []Metric {
	return append([]Metric(nil), reg.metrics...)
}

func (reg *Registry) Names() []string {
	out := make([]string, 0, len(reg.metrics))
	for _, m := range reg.metrics {
		out = append(out, m.Name)
	}
	return out
}
