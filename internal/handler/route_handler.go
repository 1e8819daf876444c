package handler

import (
	"log/slog"
	"net/http"

	"github.com/4NTx/desafioFacilita/internal/service"
)

// RouteHandler handles route computation HTTP requests
type RouteHandler struct {
	routeService service.RouteService
	logger       *slog.Logger
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeService service.RouteService, logger *slog.Logger) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
		logger:       logger,
	}
}

// Compute handles GET /route
func (h *RouteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	result, err := h.routeService.ComputeRoute(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}
