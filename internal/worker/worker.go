package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type OrderService interface {
	ProcessOrders(ctx context.Context) error
}

// BatchProcessor runs the order pipeline, either once or on a fixed schedule.
type BatchProcessor struct {
	svc      OrderService
	interval time.Duration
	logger   *zap.Logger
}

// NewBatchProcessor creates new batch processor
func NewBatchProcessor(svc OrderService, interval time.Duration, logger *zap.Logger) *BatchProcessor {
	return &BatchProcessor{svc: svc, interval: interval, logger: logger}
}

// Run processes the current batch and, when a poll interval is configured,
// keeps rescanning the storage path until the context is cancelled.
func (bp *BatchProcessor) Run(ctx context.Context) error {
	if err := bp.svc.ProcessOrders(ctx); err != nil {
		return err
	}
	if bp.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(bp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			bp.logger.Debug("batch processor is done")
			return nil
		case <-ticker.C:
			if err := bp.svc.ProcessOrders(ctx); err != nil {
				bp.logger.Error("batch run failed", zap.Error(err))
			}
		}
	}
}
