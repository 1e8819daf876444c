package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/4NTx/desafioFacilita/internal/models"
	"github.com/4NTx/desafioFacilita/internal/queue"
	"github.com/4NTx/desafioFacilita/internal/repository"
)

// CustomerService handles customer business logic
type CustomerService interface {
	Register(ctx context.Context, req *RegisterCustomerRequest) (*models.Customer, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context, filter models.CustomerFilter) (*CustomerListResult, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	queueClient  queue.Client
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service. queueClient may be nil
// when welcome messages are not configured.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	queueClient queue.Client,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		queueClient:  queueClient,
		logger:       logger,
	}
}

// Register validates and persists a new customer. The email existence check
// is only a friendly pre-check: the repository translates the storage-level
// uniqueness conflict into the same duplicate-email outcome, so a concurrent
// registration never produces a generic failure or a partial write.
func (s *customerService) Register(ctx context.Context, req *RegisterCustomerRequest) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)

	exists, err := s.customerRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, models.ErrDuplicateEmailFor(email)
	}

	customer := &models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: req.Phone,
		X:     req.X,
		Y:     req.Y,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("failed to create customer",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("customer registered",
		slog.Int64("customer_id", customer.ID),
		slog.String("email", customer.Email),
	)

	// Welcome message is best-effort: a queue failure must not undo or fail
	// an already persisted registration.
	if s.queueClient != nil {
		job := &queue.WelcomeJob{CustomerID: customer.ID}
		if err := s.queueClient.Publish(ctx, job); err != nil {
			s.logger.Error("failed to publish welcome job",
				slog.Int64("customer_id", customer.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return customer, nil
}

// GetByID retrieves a customer by ID
func (s *customerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// List retrieves customers with pagination
func (s *customerService) List(ctx context.Context, filter models.CustomerFilter) (*CustomerListResult, error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}

	customers, totalCount, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	pagination := models.NewPaginationResult(filter.Page, filter.PageSize, totalCount)

	return &CustomerListResult{
		Data:       customers,
		Pagination: pagination,
	}, nil
}
