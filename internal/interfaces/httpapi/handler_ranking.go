package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/player-insights/internal/usecase"
)

const maxComparisonBodyBytes = 64 << 10

func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Rankings")
	defer span.End()

	q, result, ok := h.rank(w, r.WithContext(ctx))
	if !ok {
		return
	}
	writeSuccess(w, http.StatusOK, rankingToDTO(q, h.rankings.EffectiveTopN(q.TopN), result))
}

func (h *Handler) ExportRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportRankings")
	defer span.End()

	_, result, ok := h.rank(w, r.WithContext(ctx))
	if !ok {
		return
	}
	if err := writeRankingCSV(w, result.Metric, result.Entries); err != nil {
		h.logger.ErrorContext(ctx, "write ranking csv failed", "metric", result.Metric, "error", err)
	}
}

func (h *Handler) rank(w http.ResponseWriter, r *http.Request) (rankingQuery, usecase.Ranking, bool) {
	ctx := r.Context()

	q, err := parseRankingQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, q)
	}
	if err != nil {
		h.fail(ctx, w, "invalid ranking query", err)
		return rankingQuery{}, usecase.Ranking{}, false
	}

	result, err := h.rankings.Rank(ctx, usecase.RankInput{
		Squad:      q.Squad,
		Position:   q.Position,
		MinMinutes: q.MinMinutes,
		Metric:     q.Metric,
		TopN:       q.TopN,
	})
	if err != nil {
		h.fail(ctx, w, "rank players failed", err, "metric", q.Metric, "squad", q.Squad, "position", q.Position)
		return rankingQuery{}, usecase.Ranking{}, false
	}
	return q, result, true
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	var req comparisonRequest
	if err := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxComparisonBodyBytes)).Decode(&req); err != nil {
		h.fail(ctx, w, "decode comparison request failed", fmt.Errorf("%w: invalid JSON payload", usecase.ErrInvalidInput))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		h.fail(ctx, w, "invalid comparison request", err)
		return
	}

	comparison, err := h.rankings.Compare(ctx, usecase.CompareInput{Players: req.Players, Metric: req.Metric})
	if err != nil {
		h.fail(ctx, w, "compare players failed", err, "metric", req.Metric, "players", len(req.Players))
		return
	}
	writeSuccess(w, http.StatusOK, comparisonToDTO(comparison))
}

func (h *Handler) SquadSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SquadSummary")
	defer span.End()

	squad := strings.TrimSpace(r.PathValue("squad"))
	q, err := parseSquadSummaryQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, q)
	}
	if err != nil {
		h.fail(ctx, w, "invalid squad summary query", err, "squad", squad)
		return
	}

	summary, err := h.rankings.SquadSummary(ctx, squad, q.Metric, q.MinMinutes)
	if err != nil {
		h.fail(ctx, w, "squad summary failed", err, "squad", squad, "metric", q.Metric)
		return
	}
	writeSuccess(w, http.StatusOK, squadSummaryToDTO(summary))
}
