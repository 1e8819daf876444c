package models

import "math"

// DepotID marks the company depot entry in a computed route. Customer IDs are
// store-assigned starting at 1, so zero never collides with a real record.
const DepotID int64 = 0

// RoutePoint is a read-only coordinate projection of a customer record
// (or the depot) used for route ordering. It carries no ownership of the
// underlying record.
type RoutePoint struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// HasValidCoordinates reports whether both coordinates are finite.
// Records failing this check are excluded from route computation.
func (p RoutePoint) HasValidCoordinates() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// DistanceTo returns the Euclidean distance to another point
func (p RoutePoint) DistanceTo(other RoutePoint) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}
