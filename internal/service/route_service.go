package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/4NTx/desafioFacilita/internal/models"
	"github.com/4NTx/desafioFacilita/internal/repository"
)

// RouteService computes the customer visitation route
type RouteService interface {
	ComputeRoute(ctx context.Context) (*RouteResult, error)
}

type routeService struct {
	customerRepo repository.CustomerRepository
	depot        models.RoutePoint
	logger       *slog.Logger
}

// NewRouteService creates a new route service. The depot comes from static
// configuration and is passed in explicitly to keep the planner pure.
func NewRouteService(
	customerRepo repository.CustomerRepository,
	depot models.RoutePoint,
	logger *slog.Logger,
) RouteService {
	return &routeService{
		customerRepo: customerRepo,
		depot:        depot,
		logger:       logger,
	}
}

// ComputeRoute loads the current customer set and orders it with the greedy
// nearest-neighbor planner. Each computation re-reads the store, so the route
// reflects a best-effort snapshot of the registry, not a transactional view.
//
// A record with non-finite coordinates is a data-integrity fault: it is
// logged and excluded from the computable set instead of crashing the
// computation. Validation at registration should prevent such records.
func (s *routeService) ComputeRoute(ctx context.Context) (*RouteResult, error) {
	points, err := s.customerRepo.ListRoutePoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load route points: %w", err)
	}

	computable := make([]models.RoutePoint, 0, len(points))
	for _, p := range points {
		if !p.HasValidCoordinates() {
			s.logger.Warn("excluding customer from route",
				slog.Int64("customer_id", p.ID),
				slog.String("code", models.CodeInvalidRecordData),
				slog.String("error", models.ErrInvalidRecordData.Error()),
			)
			continue
		}
		computable = append(computable, p)
	}

	route := NearestNeighborRoute(s.depot, computable)

	s.logger.Info("route computed",
		slog.Int("customers", len(computable)),
		slog.Int("excluded", len(points)-len(computable)),
	)

	return &RouteResult{Route: route}, nil
}
