package service

import "github.com/4NTx/desafioFacilita/internal/models"

// NearestNeighborRoute orders customers into a round trip using a greedy
// nearest-neighbor heuristic: starting at the depot, repeatedly visit the
// closest unvisited customer, then return to the depot.
//
// At each step the candidate with the strictly smallest Euclidean distance
// wins; ties keep the first candidate encountered in pool iteration order, so
// the output is fully deterministic for a given input ordering. The result is
// an approximation, not an optimal tour.
//
// The remaining pool is an index-tracked slice with swap-remove, keeping the
// O(n²) scan allocation-free and cache-friendly. The input slice is not
// modified. An empty customer set yields the degenerate [depot, depot] route.
func NearestNeighborRoute(depot models.RoutePoint, customers []models.RoutePoint) []models.RoutePoint {
	route := make([]models.RoutePoint, 0, len(customers)+2)
	route = append(route, depot)

	pool := make([]models.RoutePoint, len(customers))
	copy(pool, customers)

	current := depot
	for len(pool) > 0 {
		nearest := 0
		minDist := current.DistanceTo(pool[0])
		for i := 1; i < len(pool); i++ {
			if d := current.DistanceTo(pool[i]); d < minDist {
				minDist = d
				nearest = i
			}
		}

		current = pool[nearest]
		route = append(route, current)

		// Swap-remove the visited point
		pool[nearest] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}

	return append(route, depot)
}
