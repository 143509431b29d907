package retry

import (
	"context"
	"math/rand"
	"time"
)

type Operation = func() error

// Config controls the exponential backoff schedule. The delay before
// attempt n is InitialDelay * BackoffFactor^(n-1), capped at MaxDelay,
// plus up to Jitter of random spread.
type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    4,
		BackoffFactor: 2.0,
		InitialDelay:  250 * time.Millisecond,
		MaxDelay:      15 * time.Second,
		Jitter:        100 * time.Millisecond,
	}
}

type Retrier struct {
	cfg *Config
	rnd *rand.Rand
}

func NewRetrier(cfg *Config) *Retrier {
	return &Retrier{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do runs op until it succeeds, the attempt budget is spent, or ctx is
// cancelled. The last operation error is returned when retries run out.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	delay := r.cfg.InitialDelay

	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if attempt >= r.cfg.MaxRetries {
			return err
		}

		wait := delay + time.Duration(r.rnd.Float64()*float64(r.cfg.Jitter))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * r.cfg.BackoffFactor)
		if delay > r.cfg.MaxDelay {
			delay = r.cfg.MaxDelay
		}
	}
}
