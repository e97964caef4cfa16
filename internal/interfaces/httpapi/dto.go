package httpapi

import (
	"time"

	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/player"
	"github.com/riskibarqy/player-insights/internal/domain/ranking"
	"github.com/riskibarqy/player-insights/internal/usecase"
)

type metricDTO struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type datasetDTO struct {
	Version  string      `json:"version"`
	Origin   string      `json:"origin"`
	LoadedAt time.Time   `json:"loaded_at"`
	Rows     int         `json:"rows"`
	Columns  []string    `json:"columns"`
	Metrics  []metricDTO `json:"metrics"`
}

type refreshDTO struct {
	Changed bool       `json:"changed"`
	Dataset datasetDTO `json:"dataset"`
}

type playerDTO struct {
	Player   string             `json:"player"`
	Nation   string             `json:"nation"`
	Squad    string             `json:"squad"`
	Position string             `json:"position"`
	Age      string             `json:"age,omitempty"`
	Stats    map[string]float64 `json:"stats"`
}

type rankingEntryDTO struct {
	Rank          int     `json:"rank"`
	Player        string  `json:"player"`
	Squad         string  `json:"squad"`
	Position      string  `json:"position"`
	MinutesPlayed float64 `json:"minutes_played"`
	Value         float64 `json:"value"`
}

type rankingDTO struct {
	Metric     string            `json:"metric"`
	Squad      string            `json:"squad"`
	Position   string            `json:"position"`
	MinMinutes float64           `json:"min_minutes"`
	TopN       int               `json:"top_n"`
	Items      []rankingEntryDTO `json:"items"`
}

type comparisonPointDTO struct {
	Player string  `json:"player"`
	Squad  string  `json:"squad"`
	Value  float64 `json:"value"`
}

type comparisonDTO struct {
	Metric string               `json:"metric"`
	Points []comparisonPointDTO `json:"points"`
}

type squadSummaryDTO struct {
	Squad   string  `json:"squad"`
	Metric  string  `json:"metric"`
	Players int     `json:"players"`
	Minutes float64 `json:"minutes_played"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Leader  string  `json:"leader,omitempty"`
}

func metricsToDTO(items []metric.Metric) []metricDTO {
	out := make([]metricDTO, 0, len(items))
	for _, m := range items {
		out = append(out, metricDTO{Name: m.Name, Kind: string(m.Kind)})
	}
	return out
}

func datasetToDTO(info usecase.DatasetInfo) datasetDTO {
	return datasetDTO{
		Version:  info.Version,
		Origin:   info.Origin,
		LoadedAt: info.LoadedAt,
		Rows:     info.Rows,
		Columns:  info.Columns,
		Metrics:  metricsToDTO(info.Metrics),
	}
}

func playerToDTO(rec player.Record, metrics []metric.Metric) playerDTO {
	stats := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		stats[m.Name] = m.Value(rec)
	}
	return playerDTO{
		Player:   rec.Player,
		Nation:   rec.Nation,
		Squad:    rec.Squad,
		Position: rec.Position,
		Age:      rec.Age,
		Stats:    stats,
	}
}

func playersToDTO(table usecase.PlayerTable) []playerDTO {
	out := make([]playerDTO, 0, len(table.Records))
	for _, rec := range table.Records {
		out = append(out, playerToDTO(rec, table.Metrics))
	}
	return out
}

func rankingToDTO(q rankingQuery, topN int, result usecase.Ranking) rankingDTO {
	items := make([]rankingEntryDTO, 0, len(result.Entries))
	for _, e := range result.Entries {
		items = append(items, rankingEntryDTO{
			Rank:          e.Rank,
			Player:        e.Record.Player,
			Squad:         e.Record.Squad,
			Position:      e.Record.Position,
			MinutesPlayed: e.Record.MinutesPlayed,
			Value:         e.Value,
		})
	}
	return rankingDTO{
		Metric:     result.Metric,
		Squad:      orAll(q.Squad),
		Position:   orAll(q.Position),
		MinMinutes: q.MinMinutes,
		TopN:       topN,
		Items:      items,
	}
}

func comparisonToDTO(c usecase.Comparison) comparisonDTO {
	out := make([]comparisonPointDTO, 0, len(c.Points))
	for _, p := range c.Points {
		out = append(out, comparisonPointDTO{Player: p.Player, Squad: p.Squad, Value: p.Value})
	}
	return comparisonDTO{Metric: c.Metric, Points: out}
}

func squadSummaryToDTO(s ranking.SquadSummary) squadSummaryDTO {
	return squadSummaryDTO{
		Squad:   s.Squad,
		Metric:  s.Metric,
		Players: s.Players,
		Minutes: s.Minutes,
		Total:   s.Total,
		Average: s.Average,
		Max:     s.Max,
		Leader:  s.Leader,
	}
}

func orAll(v string) string {
	if v == "" {
		return ranking.All
	}
	return v
}
