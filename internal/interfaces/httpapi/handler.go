package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/player-insights/internal/observability"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
	"github.com/riskibarqy/player-insights/internal/usecase"
)

type Handler struct {
	rankings  *usecase.RankingService
	datasets  *usecase.DatasetService
	metrics   *observability.Metrics
	logger    *logging.Logger
	validator *validator.Validate
}

// NewHandler builds the HTTP handlers. metrics may be nil.
func NewHandler(
	rankings *usecase.RankingService,
	datasets *usecase.DatasetService,
	metrics *observability.Metrics,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rankings:  rankings,
		datasets:  datasets,
		metrics:   metrics,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// fail logs err at a level matching its mapped status and writes the error
// envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(w, err)
}
