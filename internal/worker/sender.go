package worker

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// MessageSender defines the interface for delivering welcome messages
type MessageSender interface {
	Send(ctx context.Context, email, content string) error
}

// mockSender simulates message delivery with a configurable success rate
type mockSender struct {
	successRate float64
	minDelay    time.Duration
	maxDelay    time.Duration
}

// NewMockSender creates a new mock message sender.
// successRate: probability of success (0.0 to 1.0), default 0.92 (92%)
func NewMockSender(successRate float64) MessageSender {
	if successRate <= 0 || successRate > 1.0 {
		successRate = 0.92
	}

	return &mockSender{
		successRate: successRate,
		minDelay:    50 * time.Millisecond, // Simulate network latency
		maxDelay:    200 * time.Millisecond,
	}
}

// Send simulates delivering a message
func (s *mockSender) Send(ctx context.Context, email, content string) error {
	delay := s.minDelay + time.Duration(rand.Int63n(int64(s.maxDelay-s.minDelay)))

	select {
	case <-time.After(delay):
		// Continue
	case <-ctx.Done():
		return ctx.Err()
	}

	if rand.Float64() > s.successRate {
		return fmt.Errorf("mock sender failed: simulated network error")
	}

	return nil
}
