package metric

import (
	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	"github.com/sourcegraph/conc/iter"
)

// Deriver computes derived metrics for normalized records.
type Deriver struct {
	mode        FairContributionMode
	definitions []Definition
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithFairContributionMode selects the Fair_Contribution formula. Unknown
// modes fall back to FairContributionLog.
func WithFairContributionMode(mode FairContributionMode) Option {
	return func(d *Deriver) {
		if mode == FairContributionSaturation {
			d.mode = FairContributionSaturation
			return
		}
		d.mode = FairContributionLog
	}
}

func NewDeriver(opts ...Option) *Deriver {
	d := &Deriver{mode: FairContributionLog}
	for _, opt := range opts {
		opt(d)
	}
	d.definitions = definitions(d.mode)
	return d
}

func (d *Deriver) Mode() FairContributionMode {
	return d.mode
}

// Names returns every derived metric the deriver knows, available or not.
func (d *Deriver) Names() []string {
	out := make([]string, 0, len(d.definitions))
	for _, def := range d.definitions {
		out = append(out, def.Name)
	}
	return out
}

// Derive returns copies of records with every available derived metric
// attached, plus the names of those metrics. Definitions whose inputs are
// missing from the dataset are skipped. records is not modified.
func (d *Deriver) Derive(records []player.Record, has Columns) ([]player.Record, []string) {
	if has == nil {
		has = func(string) bool { return false }
	}

	active := make([]Definition, 0, len(d.definitions))
	names := make([]string, 0, len(d.definitions))
	for _, def := range d.definitions {
		if def.available(has) {
			active = append(active, def)
			names = append(names, def.Name)
		}
	}

	c := Context{MaxMinutes: player.MaxMinutes(records), Has: has}
	out := iter.Map(records, func(r *player.Record) player.Record {
		values := make(map[string]float64, len(active))
		for _, def := range active {
			values[def.Name] = schema.Round2(def.Compute(*r, c))
		}
		return r.WithDerived(values)
	})

	return out, names
}
