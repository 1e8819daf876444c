package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/4NTx/desafioFacilita/internal/models"
)

// CustomerRepository defines the interface for customer data access.
// The core treats durable storage as a capability: services depend on this
// interface, never on a concrete backend.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error)
	ListRoutePoints(ctx context.Context) ([]models.RoutePoint, error)
}

// customerRepository implements CustomerRepository using PostgreSQL
type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts a new customer. A unique-constraint violation on email is
// translated into the duplicate-email validation outcome rather than a
// generic storage failure, so concurrent registrations racing past the
// pre-check still fail cleanly.
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, x, y)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.X,
		customer.Y,
	).Scan(&customer.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.ErrDuplicateEmailFor(customer.Email)
		}
		return models.ErrStorageUnavailableWrap(fmt.Errorf("failed to create customer: %w", err))
	}

	return nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `
		SELECT id, name, email, phone, x, y
		FROM customers
		WHERE id = $1`

	customer := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.X,
		&customer.Y,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %d not found", id))
	}
	if err != nil {
		return nil, models.ErrStorageUnavailableWrap(fmt.Errorf("failed to get customer: %w", err))
	}

	return customer, nil
}

// EmailExists reports whether a customer with the given email is registered
func (r *customerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM customers WHERE email = $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return false, models.ErrStorageUnavailableWrap(fmt.Errorf("failed to check email: %w", err))
	}

	return count > 0, nil
}

// List retrieves customers with pagination and filtering. Supplied filters
// are AND-combined; name matches as a substring, email and phone exactly.
// Results are ordered by id ascending so that an identical filter against an
// unchanged table always yields identical page contents.
func (r *customerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]*models.Customer, int64, error) {
	if err := filter.Normalize(); err != nil {
		return nil, 0, err
	}

	// Build query with filters
	query := `
		SELECT id, name, email, phone, x, y
		FROM customers
		WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM customers WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Name != "" {
		query += fmt.Sprintf(" AND name LIKE $%d", argPos)
		countQuery += fmt.Sprintf(" AND name LIKE $%d", argPos)
		args = append(args, "%"+filter.Name+"%")
		argPos++
	}

	if filter.Email != "" {
		query += fmt.Sprintf(" AND email = $%d", argPos)
		countQuery += fmt.Sprintf(" AND email = $%d", argPos)
		args = append(args, filter.Email)
		argPos++
	}

	if filter.Phone != "" {
		query += fmt.Sprintf(" AND phone = $%d", argPos)
		countQuery += fmt.Sprintf(" AND phone = $%d", argPos)
		args = append(args, filter.Phone)
		argPos++
	}

	// Get total count. The count runs as a separate query sharing the filter,
	// so it may lag the page under concurrent writes (no snapshot isolation).
	var totalCount int64
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, models.ErrStorageUnavailableWrap(fmt.Errorf("failed to count customers: %w", err))
	}

	// Add pagination with stable ordering (id ASC for consistent pages)
	offset := models.CalculateOffset(filter.Page, filter.PageSize)
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.PageSize, offset)

	// Execute query
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, models.ErrStorageUnavailableWrap(fmt.Errorf("failed to list customers: %w", err))
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer := &models.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.X,
			&customer.Y,
		)
		if err != nil {
			return nil, 0, models.ErrStorageUnavailableWrap(fmt.Errorf("failed to scan customer: %w", err))
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, models.ErrStorageUnavailableWrap(fmt.Errorf("error iterating customers: %w", err))
	}

	return customers, totalCount, nil
}

// ListRoutePoints retrieves the coordinate projection of every customer for
// route computation, ordered by id ascending for deterministic planning input.
func (r *customerRepository) ListRoutePoints(ctx context.Context) ([]models.RoutePoint, error) {
	query := `SELECT id, name, x, y FROM customers ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, models.ErrStorageUnavailableWrap(fmt.Errorf("failed to list route points: %w", err))
	}
	defer rows.Close()

	points := []models.RoutePoint{}
	for rows.Next() {
		var p models.RoutePoint
		if err := rows.Scan(&p.ID, &p.Name, &p.X, &p.Y); err != nil {
			return nil, models.ErrStorageUnavailableWrap(fmt.Errorf("failed to scan route point: %w", err))
		}
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, models.ErrStorageUnavailableWrap(fmt.Errorf("error iterating route points: %w", err))
	}

	return points, nil
}
