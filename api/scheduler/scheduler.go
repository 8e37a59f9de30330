package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/models"
)

// Syncer triggers a backend resync from the voice provider
type Syncer interface {
	Sync(ctx context.Context) (*models.SyncResult, error)
}

// Scheduler runs the periodic out-of-band resync that keeps the backend
// mirror close to the provider's state between user-triggered syncs
type Scheduler struct {
	cron     *cron.Cron
	engine   Syncer
	schedule string
}

// New creates a new scheduler that runs the engine's sync on the given cron
// schedule, e.g. "@every 1h"
func New(engine Syncer, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		engine:   engine,
		schedule: schedule,
	}
}

// Start begins the scheduler with the sync job registered
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.runSync)
	if err != nil {
		return err
	}
	s.cron.Start()
	zap.S().Infow("sync scheduler started", "schedule", s.schedule)
	return nil
}

// Stop halts the scheduler, running jobs complete before it returns
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSync() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := s.engine.Sync(ctx)
	if err != nil {
		zap.S().With(err).Error("scheduled sync failed")
		return
	}
	zap.S().Infow("scheduled sync complete", "processed", result.Processed)
}
