package service

import (
	"math"
	"regexp"
	"strings"

	"github.com/4NTx/desafioFacilita/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)
)

// RegisterCustomerRequest represents a request to register a customer
type RegisterCustomerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Validate checks every field and reports all violations at once so the
// caller can correct the full request in one round trip.
func (r *RegisterCustomerRequest) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if !emailPattern.MatchString(r.Email) {
		fields["email"] = "must be a valid email address"
	}
	if !phonePattern.MatchString(r.Phone) {
		fields["phone"] = "must contain exactly 10 or 11 digits"
	}
	if !isFinite(r.X) {
		fields["x"] = "must be a finite number"
	}
	if !isFinite(r.Y) {
		fields["y"] = "must be a finite number"
	}

	if len(fields) > 0 {
		return models.ErrValidationFailed(fields)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CustomerListResult represents paginated customer list results
type CustomerListResult struct {
	Data       []*models.Customer      `json:"data"`
	Pagination models.PaginationResult `json:"pagination"`
}

// RouteResult represents a computed visitation route. The first and last
// entries are always the depot.
type RouteResult struct {
	Route []models.RoutePoint `json:"route"`
}
