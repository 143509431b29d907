package auth

import (
	"context"
	"time"

	"github.com/sandevgo/studykb/pkg/log"
)

// Janitor periodically removes expired sessions so the sessions table
// does not grow without bound.
type Janitor struct {
	svc      *Service
	interval time.Duration
}

func NewJanitor(svc *Service, interval time.Duration) *Janitor {
	return &Janitor{svc: svc, interval: interval}
}

func (j *Janitor) Start(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := j.svc.Cleanup(ctx); err != nil {
				log.FromCtx(ctx).Warn().Err(err).Msg("session cleanup failed")
			}
		}
	}
}

func (j *Janitor) Shutdown(ctx context.Context) error {
	return nil
}
