package player

import (
	"sort"
	"time"
)

// Meta describes where a dataset came from.
type Meta struct {
	Version  string
	Origin   string
	LoadedAt time.Time
}

// Dataset is an immutable, normalized set of player records plus the schema
// it was built from. It is safe for concurrent readers.
type Dataset struct {
	meta    Meta
	columns []string
	present map[string]struct{}
	derived []string
	records []Record
}

// NewDataset copies columns, derived metric names and records into a new handle.
func NewDataset(meta Meta, columns []string, derived []string, records []Record) *Dataset {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}

	return &Dataset{
		meta:    meta,
		columns: append([]string(nil), columns...),
		present: present,
		derived: append([]string(nil), derived...),
		records: append([]Record(nil), records...),
	}
}

func (d *Dataset) Meta() Meta {
	return d.meta
}

func (d *Dataset) Version() string {
	return d.meta.Version
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Columns returns the canonical source columns present in the dataset.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

func (d *Dataset) HasColumn(column string) bool {
	_, ok := d.present[column]
	return ok
}

// DerivedMetrics returns the names of derived metrics computed for this dataset.
func (d *Dataset) DerivedMetrics() []string {
	return append([]string(nil), d.derived...)
}

// Records returns a copy of the records in source order.
func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}

// Each calls fn for every record in source order until fn returns false.
func (d *Dataset) Each(fn func(Record) bool) {
	for _, r := range d.records {
		if !fn(r) {
			return
		}
	}
}

// Find returns the first record whose player name equals name.
func (d *Dataset) Find(name string) (Record, bool) {
	for _, r := range d.records {
		if r.Player == name {
			return r, true
		}
	}
	return Record{}, false
}

// Squads returns the distinct squads in lexical order.
func (d *Dataset) Squads() []string {
	return d.distinct(func(r Record) string { return r.Squad })
}

// Positions returns the distinct primary positions in lexical order.
func (d *Dataset) Positions() []string {
	return d.distinct(func(r Record) string { return r.Position })
}

// MaxMinutes returns the highest MinutesPlayed in the dataset, or 0 when empty.
func (d *Dataset) MaxMinutes() float64 {
	return MaxMinutes(d.records)
}

func (d *Dataset) distinct(key func(Record) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range d.records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MaxMinutes returns the highest MinutesPlayed across records.
func MaxMinutes(records []Record) float64 {
	out := 0.0
	for _, r := range records {
		if r.MinutesPlayed > out {
			out = r.MinutesPlayed
		}
	}
	return out
}
