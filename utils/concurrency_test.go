package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestConcurrencyRunsAll(t *testing.T) {
	var calls int32
	var inFlight, maxInFlight int32

	err := Concurrency(context.Background(), 3, 20, func(_ context.Context, _ int) error {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			max := atomic.LoadInt32(&maxInFlight)
			if current <= max || atomic.CompareAndSwapInt32(&maxInFlight, max, current) {
				break
			}
		}
		atomic.AddInt32(&calls, 1)
		atomic.AddInt32(&inFlight, -1)
		return nil
	})
	if err != nil {
		t.Fatalf("Concurrency: %v", err)
	}
	if calls != 20 {
		t.Errorf("calls = %d, want 20", calls)
	}
	if maxInFlight > 3 {
		t.Errorf("max in flight = %d, want <= 3", maxInFlight)
	}
}

func TestConcurrencyFirstError(t *testing.T) {
	boom := errors.New("boom")

	err := Concurrency(context.Background(), 1, 10, func(ctx context.Context, index int) error {
		if index == 2 {
			return boom
		}
		return ctx.Err()
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestConcurrencyCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Concurrency(ctx, 2, 5, func(context.Context, int) error {
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
