// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

type refreshJob struct {
	accounts AccountService
	updates  chan RefreshResult

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that refetches the account collection on
// a ticker and publishes each result on Updates. The job is idle until Start
// is called.
func NewRefreshJob(accounts AccountService) RefreshJob {
	return &refreshJob{
		accounts: accounts,
		updates:  make(chan RefreshResult, 1),
	}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that calls List every interval. If interval
// is zero or negative it defaults to 30 seconds. The goroutine exits when ctx
// is cancelled, Stop is called, or the session expires (a fresh logon has to
// restart polling).
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
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
				view, err := j.accounts.List(jobCtx)
				j.publish(jobCtx, RefreshResult{View: view, Err: err})
				if errors.Is(err, ErrSessionExpired) {
					return
				}
			}
		}
	}()
}

// publish delivers a result without ever blocking the ticker goroutine: if
// the consumer has not drained the previous result it is replaced by the
// newer one.
func (j *refreshJob) publish(ctx context.Context, result RefreshResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case j.updates <- result:
			return
		default:
			select {
			case <-j.updates:
			default:
			}
		}
	}
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Updates implements RefreshJob.
func (j *refreshJob) Updates() <-chan RefreshResult {
	return j.updates
}
