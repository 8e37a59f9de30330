package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voicedeck/call-dashboard-api/models"
)

type fakeSyncer struct {
	calls int32
	err   error
}

func (f *fakeSyncer) Sync(ctx context.Context) (*models.SyncResult, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return &models.SyncResult{Processed: 3}, nil
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := New(&fakeSyncer{}, "not-a-schedule")
	assert.Error(t, s.Start())
}

func TestRunSyncInvokesEngine(t *testing.T) {
	f := &fakeSyncer{}
	s := New(f, "@every 1h")

	s.runSync()

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

func TestRunSyncSwallowsEngineError(t *testing.T) {
	f := &fakeSyncer{err: errors.New("backend sync returned status 503")}
	s := New(f, "@every 1h")

	// a failed scheduled sync only logs, the next tick retries
	s.runSync()

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

func TestStartAndStop(t *testing.T) {
	s := New(&fakeSyncer{}, "@every 1h")
	assert.NoError(t, s.Start())
	s.Stop()
}
