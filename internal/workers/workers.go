// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Dubrovin

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ddubrovin/tax-intake-client/internal/logger"
)

// RefreshJob periodically asks a Refresher to re-pull the profile snapshot.
// The job is idle until Start is called.
type RefreshJob struct {
	refresher Refresher
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob driving refresher. log may be nil.
func NewRefreshJob(refresher Refresher, log *logger.Logger) *RefreshJob {
	if log == nil {
		log = logger.Nop()
	}
	return &RefreshJob{refresher: refresher, logger: log}
}

// Start stops any previously running job, then launches a background
// goroutine that calls RefreshIfClean every interval. If interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.refresher.RefreshIfClean(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background profile refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running (no-op in that
// case).
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
