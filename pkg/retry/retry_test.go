package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(maxRetries int) *Config {
	return &Config{
		MaxRetries:    maxRetries,
		BackoffFactor: 2.0,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		Jitter:        time.Millisecond,
	}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	attempts := 0
	err := NewRetrier(fastConfig(3)).Do(context.Background(), func() error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDoRecoversAfterFailures(t *testing.T) {
	attempts := 0
	err := NewRetrier(fastConfig(3)).Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("flaky")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoReturnsLastErrorWhenBudgetSpent(t *testing.T) {
	permanent := errors.New("permanent")
	attempts := 0
	err := NewRetrier(fastConfig(2)).Do(context.Background(), func() error {
		attempts++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("err = %v, want %v", err, permanent)
	}
	// Initial try plus two retries
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	err := NewRetrier(fastConfig(5)).Do(ctx, func() error {
		cancel()
		return errors.New("fails while cancelling")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
