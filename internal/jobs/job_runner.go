package jobs

import (
	"context"
	"fmt"
	"time"

	"rental-backend/internal/config"
	"rental-backend/internal/logger"
	"rental-backend/internal/metrics"
	"rental-backend/internal/service"
)

const jobTimeout = 5 * time.Minute

// Job names accepted by RunOnce.
const (
	JobDeactivateExpiredPriceLists = "deactivate-expired-price-lists"
	JobAll                         = "all"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	catalog service.CatalogService
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(catalog service.CatalogService, cfg *config.Config) *JobRunner {
	return &JobRunner{catalog: catalog, config: cfg}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
		if err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("job_" + jobName).Inc()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	start := time.Now()
	if err = jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
	return nil
}

// Jobs lists the names RunOnce understands.
func Jobs() []string {
	return []string{JobDeactivateExpiredPriceLists, JobAll}
}

// RunOnce runs one job by name (for manual execution)
func (jr *JobRunner) RunOnce(name string) error {
	switch name {
	case JobDeactivateExpiredPriceLists, JobAll:
		return jr.DeactivateExpiredPriceLists()
	default:
		return fmt.Errorf("unknown job %q, available: %v", name, Jobs())
	}
}
