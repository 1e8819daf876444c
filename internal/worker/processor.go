package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/4NTx/desafioFacilita/internal/models"
	"github.com/4NTx/desafioFacilita/internal/queue"
	"github.com/4NTx/desafioFacilita/internal/repository"
)

// WelcomeProcessor processes welcome-message jobs from the queue
type WelcomeProcessor struct {
	customerRepo repository.CustomerRepository
	queueClient  queue.Client
	sender       MessageSender
	companyName  string
	maxRetries   int
	logger       *slog.Logger
}

// NewWelcomeProcessor creates a new welcome-message processor
func NewWelcomeProcessor(
	customerRepo repository.CustomerRepository,
	queueClient queue.Client,
	sender MessageSender,
	companyName string,
	maxRetries int,
	logger *slog.Logger,
) *WelcomeProcessor {
	return &WelcomeProcessor{
		customerRepo: customerRepo,
		queueClient:  queueClient,
		sender:       sender,
		companyName:  companyName,
		maxRetries:   maxRetries,
		logger:       logger,
	}
}

// Process handles a single welcome job. On delivery failure the job is
// republished with an incremented attempt count until maxRetries is reached,
// then dropped with an error log.
func (p *WelcomeProcessor) Process(ctx context.Context, job *queue.WelcomeJob) error {
	customer, err := p.customerRepo.GetByID(ctx, job.CustomerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Record removed between registration and processing; nothing to
			// deliver, so the job is dropped without retry.
			p.logger.Warn("customer no longer exists, dropping welcome job",
				slog.Int64("customer_id", job.CustomerID),
			)
			return nil
		}
		p.logger.Error("failed to fetch customer",
			slog.Int64("customer_id", job.CustomerID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to fetch customer: %w", err)
	}

	content := fmt.Sprintf("Hello %s, welcome to %s!", customer.Name, p.companyName)

	p.logger.Info("processing welcome job",
		slog.Int64("customer_id", customer.ID),
		slog.String("email", customer.Email),
		slog.Int("attempts", job.Attempts),
	)

	if err := p.sender.Send(ctx, customer.Email, content); err != nil {
		p.logger.Warn("welcome message send failed",
			slog.Int64("customer_id", customer.ID),
			slog.Int("attempts", job.Attempts),
			slog.String("error", err.Error()),
		)

		return p.handleFailure(ctx, job, err)
	}

	p.logger.Info("welcome message sent",
		slog.Int64("customer_id", customer.ID),
		slog.String("email", customer.Email),
	)

	return nil
}

// handleFailure republishes the job or gives up once retries are exhausted
func (p *WelcomeProcessor) handleFailure(ctx context.Context, job *queue.WelcomeJob, sendErr error) error {
	if job.Attempts+1 >= p.maxRetries {
		p.logger.Error("welcome message permanently failed after max retries",
			slog.Int64("customer_id", job.CustomerID),
			slog.Int("attempts", job.Attempts+1),
			slog.Int("max_retries", p.maxRetries),
		)
		return fmt.Errorf("max retries exceeded: %w", sendErr)
	}

	retry := &queue.WelcomeJob{
		CustomerID: job.CustomerID,
		Attempts:   job.Attempts + 1,
	}

	if err := p.queueClient.Publish(ctx, retry); err != nil {
		p.logger.Error("failed to republish welcome job",
			slog.Int64("customer_id", job.CustomerID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to republish job: %w", err)
	}

	return nil
}
