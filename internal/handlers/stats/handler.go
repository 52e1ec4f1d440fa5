package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pms/infras/otel"
	"pms/internal/domains/stats/service"
	"pms/shared/constant"
	"pms/transport/http/response"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stats", handler.GetOverview)
}

// GetOverview returns the dashboard counters.
// @Summary Get dashboard statistics
// @Description Retrieve room, booking, and occupancy counters for the staff dashboard.
// @Tags Stats
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.OverviewResponse] "Dashboard statistics"
// @Failure 500 {object} response.Error
// @Router /v1/stats [get]
// @Security BearerAuth
func (handler *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverview")
	defer scope.End()

	overview, err := handler.service.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats overview")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats overview retrieved successfully")

	response.WithJSON(w, http.StatusOK, overview)
}
