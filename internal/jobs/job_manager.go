package jobs

import (
	"fmt"
	"log/slog"

	"sales/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentDisparityJob *PaymentDisparityJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	disparitiesHandler PaymentDisparitiesQueryHandler,
	publisher ports.EventPublisher,
	disparitySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentDisparityJob: NewPaymentDisparityJob(disparitiesHandler, publisher, disparitySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentDisparityJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment disparity job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentDisparityJob.Stop()
}
