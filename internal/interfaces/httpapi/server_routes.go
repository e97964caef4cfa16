package httpapi

import (
	"net/http"

	"github.com/riskibarqy/player-insights/internal/observability"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics *observability.Metrics) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}
}

func registerDatasetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dataset", handler.GetDataset)
	mux.HandleFunc("POST /v1/dataset/refresh", handler.RefreshDataset)
	mux.HandleFunc("GET /v1/metrics", handler.ListMetrics)
	mux.HandleFunc("GET /v1/squads", handler.ListSquads)
	mux.HandleFunc("GET /v1/positions", handler.ListPositions)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{name}", handler.GetPlayer)
}

func registerRankingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/rankings", handler.Rankings)
	mux.HandleFunc("GET /v1/rankings/export", handler.ExportRankings)
	mux.HandleFunc("POST /v1/comparisons", handler.ComparePlayers)
	mux.HandleFunc("GET /v1/squads/{squad}/summary", handler.SquadSummary)
}
