// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cpm-tools/vault-console/models"
)

// stubAccountService implements AccountService with canned List results so
// the job tests need no network or mocks.
type stubAccountService struct {
	AccountService

	calls   atomic.Int64
	listErr error
}

func (s *stubAccountService) List(_ context.Context) (AccountView, error) {
	s.calls.Add(1)
	if s.listErr != nil {
		return AccountView{}, s.listErr
	}
	return AccountView{Accounts: []models.Account{{ID: "acc-1"}}}, nil
}

func TestRefreshJob_DeliversPeriodicResults(t *testing.T) {
	stub := &stubAccountService{}
	job := NewRefreshJob(stub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job.Start(ctx, 10*time.Millisecond)
	defer job.Stop()

	select {
	case result := <-job.Updates():
		if result.Err != nil {
			t.Fatalf("unexpected refresh error: %v", result.Err)
		}
		if len(result.View.Accounts) != 1 {
			t.Fatalf("expected 1 account in refresh result, got %d", len(result.View.Accounts))
		}
	case <-time.After(time.Second):
		t.Fatal("no refresh result within a second")
	}
}

func TestRefreshJob_StopsOnSessionExpiry(t *testing.T) {
	stub := &stubAccountService{listErr: ErrSessionExpired}
	job := NewRefreshJob(stub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job.Start(ctx, 5*time.Millisecond)
	defer job.Stop()

	select {
	case result := <-job.Updates():
		if result.Err == nil {
			t.Fatal("expected session-expired result")
		}
	case <-time.After(time.Second):
		t.Fatal("no refresh result within a second")
	}

	// give the goroutine room to (incorrectly) keep ticking
	calls := stub.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := stub.calls.Load(); got != calls {
		t.Fatalf("job kept polling after session expiry: %d -> %d calls", calls, got)
	}
}

func TestRefreshJob_StartReplacesRunningJob(t *testing.T) {
	stub := &stubAccountService{}
	job := NewRefreshJob(stub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job.Start(ctx, time.Hour)
	job.Start(ctx, 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-job.Updates():
	case <-time.After(time.Second):
		t.Fatal("restarted job never delivered a result")
	}
}

func TestRefreshJob_StopIsIdempotent(t *testing.T) {
	job := NewRefreshJob(&stubAccountService{})
	job.Stop()
	job.Stop()
}
