package models

// Customer represents a registered customer in the system
type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// CustomerFilter holds filtering options for listing customers.
// Name matches as a substring; Email and Phone match exactly.
// Empty fields impose no constraint.
type CustomerFilter struct {
	Name     string
	Email    string
	Phone    string
	Page     int
	PageSize int
}

// Normalize applies pagination defaults for unset values and rejects
// negative ones. Handlers reject explicit zero parameters before the filter
// is built, so a zero here always means "not supplied".
func (f *CustomerFilter) Normalize() error {
	if f.Page < 0 {
		return ErrInvalidArgument("page must be greater than or equal to 1")
	}
	if f.PageSize < 0 {
		return ErrInvalidArgument("page_size must be greater than or equal to 1")
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	return nil
}
