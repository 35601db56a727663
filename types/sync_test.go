// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestSafeCounter(t *testing.T) {
	var (
		counter SafeCounter
		wg      sync.WaitGroup
	)

	for index := 0; index < 50; index++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Inc()
		}()
	}
	wg.Wait()

	if got := counter.Value(); got != 50 {
		t.Errorf("Value() = %d, want 50", got)
	}
}

func TestMonitorChannels(t *testing.T) {
	errFailed := errors.New("failed")

	tests := []struct {
		name      string
		ops       int
		successes int
		failures  int
		cancel    bool
		wantErr   error
	}{
		{name: "all done", ops: 3, successes: 3},
		{name: "failures joined", ops: 3, successes: 1, failures: 2, wantErr: errFailed},
		{name: "invalid count", ops: 0, wantErr: ErrInvalidGoroutineCount},
		{name: "cancelled", ops: 2, successes: 1, cancel: true, wantErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan bool, tt.successes)
			errChan := make(chan error, tt.failures)
			for index := 0; index < tt.successes; index++ {
				done <- true
			}
			for index := 0; index < tt.failures; index++ {
				errChan <- errFailed
			}
			if tt.cancel {
				cancel()
			}

			err := MonitorChannels(ctx, tt.ops, done, errChan, "job")
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("MonitorChannels() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("MonitorChannels() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
