package queue

import "context"

// WelcomeJob represents a queued welcome message for a newly registered
// customer. Attempts counts deliveries already tried; the worker republishes
// failed jobs with an incremented count until the retry budget runs out.
type WelcomeJob struct {
	CustomerID int64 `json:"customer_id"`
	Attempts   int   `json:"attempts"`
}

// Client defines the interface for queue operations
type Client interface {
	// Publish sends a welcome job to the queue
	Publish(ctx context.Context, job *WelcomeJob) error

	// Consume receives jobs from the queue and processes them with the handler;
	// concurrency controls how many jobs can be processed simultaneously
	Consume(ctx context.Context, handler JobHandler, concurrency int) error

	// Close closes the queue connection
	Close() error

	// Health checks if the queue is healthy
	Health(ctx context.Context) error
}

// JobHandler is a function that processes a welcome job
type JobHandler func(ctx context.Context, job *WelcomeJob) error
