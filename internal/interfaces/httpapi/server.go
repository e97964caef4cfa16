package httpapi

import (
	"net/http"

	"github.com/riskibarqy/player-insights/internal/observability"
	"github.com/riskibarqy/player-insights/internal/platform/id"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
)

// NewRouter wires routes and middleware. metrics may be nil.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	metrics *observability.Metrics,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metrics)
	registerDatasetRoutes(mux, handler)
	registerRankingRoutes(mux, handler)

	var h http.Handler = Instrument(metrics, mux)
	h = recoverPanic(logger, h)
	h = CORS(corsAllowedOrigins, h)
	h = RequestLogging(logger, h)
	h = RequestID(id.NewRandomGenerator(), h)
	return RequestTracing(h)
}
