package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/player-insights/internal/domain/ranking"
)

func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDataset")
	defer span.End()

	info, err := h.rankings.DatasetInfo(ctx)
	if err != nil {
		h.fail(ctx, w, "get dataset info failed", err)
		return
	}
	writeSuccess(w, http.StatusOK, datasetToDTO(info))
}

func (h *Handler) RefreshDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshDataset")
	defer span.End()

	view, changed, err := h.datasets.Refresh(ctx)
	h.metrics.ObserveDatasetLoad(err)
	if err != nil {
		h.fail(ctx, w, "refresh dataset failed", err)
		return
	}
	info := view.Info()
	if changed {
		h.metrics.SetDataset(info.Version, info.Origin, info.Rows)
		h.logger.InfoContext(ctx, "dataset refreshed", "version", info.Version, "rows", info.Rows)
	}
	writeSuccess(w, http.StatusOK, refreshDTO{Changed: changed, Dataset: datasetToDTO(info)})
}

func (h *Handler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMetrics")
	defer span.End()

	items, err := h.rankings.ListMetrics(ctx)
	if err != nil {
		h.fail(ctx, w, "list metrics failed", err)
		return
	}
	writeSuccess(w, http.StatusOK, metricsToDTO(items))
}

func (h *Handler) ListSquads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquads")
	defer span.End()

	items, err := h.rankings.SquadOptions(ctx)
	if err != nil {
		h.fail(ctx, w, "list squads failed", err)
		return
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	items, err := h.rankings.PositionOptions(ctx)
	if err != nil {
		h.fail(ctx, w, "list positions failed", err)
		return
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	q, err := parsePlayerFilterQuery(r.URL.Query())
	if err == nil {
		err = h.validateRequest(ctx, q)
	}
	if err != nil {
		h.fail(ctx, w, "invalid player filter", err)
		return
	}

	table, err := h.rankings.ListPlayers(ctx, ranking.Filter{
		Squad:      q.Squad,
		Position:   q.Position,
		MinMinutes: q.MinMinutes,
	})
	if err != nil {
		h.fail(ctx, w, "list players failed", err, "squad", q.Squad, "position", q.Position)
		return
	}
	writeSuccess(w, http.StatusOK, playersToDTO(table))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	table, err := h.rankings.GetPlayer(ctx, name)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player", name)
		return
	}
	writeSuccess(w, http.StatusOK, playerToDTO(table.Records[0], table.Metrics))
}
