package httpapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/player-insights/internal/usecase"
)

type rankingQuery struct {
	Squad      string  `validate:"max=200"`
	Position   string  `validate:"max=20"`
	MinMinutes float64 `validate:"gte=0"`
	Metric     string  `validate:"required,max=100"`
	TopN       int     `validate:"gte=0"`
}

type playerFilterQuery struct {
	Squad      string  `validate:"max=200"`
	Position   string  `validate:"max=20"`
	MinMinutes float64 `validate:"gte=0"`
}

type squadSummaryQuery struct {
	Metric     string  `validate:"required,max=100"`
	MinMinutes float64 `validate:"gte=0"`
}

type comparisonRequest struct {
	Players []string `json:"players" validate:"required,min=1,max=50,dive,required,max=200"`
	Metric  string   `json:"metric" validate:"required,max=100"`
}

func parseRankingQuery(values url.Values) (rankingQuery, error) {
	minMinutes, err := queryFloat(values, "min_minutes")
	if err != nil {
		return rankingQuery{}, err
	}
	topN, err := queryInt(values, "top_n")
	if err != nil {
		return rankingQuery{}, err
	}
	return rankingQuery{
		Squad:      queryString(values, "squad"),
		Position:   queryString(values, "position"),
		MinMinutes: minMinutes,
		Metric:     queryString(values, "metric"),
		TopN:       topN,
	}, nil
}

func parsePlayerFilterQuery(values url.Values) (playerFilterQuery, error) {
	minMinutes, err := queryFloat(values, "min_minutes")
	if err != nil {
		return playerFilterQuery{}, err
	}
	return playerFilterQuery{
		Squad:      queryString(values, "squad"),
		Position:   queryString(values, "position"),
		MinMinutes: minMinutes,
	}, nil
}

func parseSquadSummaryQuery(values url.Values) (squadSummaryQuery, error) {
	minMinutes, err := queryFloat(values, "min_minutes")
	if err != nil {
		return squadSummaryQuery{}, err
	}
	return squadSummaryQuery{
		Metric:     queryString(values, "metric"),
		MinMinutes: minMinutes,
	}, nil
}

func queryString(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func queryFloat(values url.Values, key string) (float64, error) {
	raw := queryString(values, key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func queryInt(values url.Values, key string) (int, error) {
	raw := queryString(values, key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}
