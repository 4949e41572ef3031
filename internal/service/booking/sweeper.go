package booking

import (
	"context"
	"log/slog"
	"time"

	"salonbook/backend/internal/domain"
)

type holdExpirer interface {
	ExpireHolds(ctx context.Context) ([]domain.Appointment, error)
}

// Sweeper periodically moves lapsed holds to expired. Reads already ignore
// lapsed holds, so the sweep only keeps stored statuses honest.
type Sweeper struct {
	svc      holdExpirer
	interval time.Duration
	log      *slog.Logger
}

func NewSweeper(svc holdExpirer, interval time.Duration, log *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{svc: svc, interval: interval, log: log}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.svc.ExpireHolds(ctx); err != nil && ctx.Err() == nil {
			s.log.Error("hold sweep failed", slog.Any("err", err))
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
