package scheduler

import (
	"context"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper is the periodic reconciliation loop. It covers two gaps the
// in-memory timers leave open: settled requests whose purge timer was lost
// to a restart, and active reminders whose date has passed.
type Sweeper struct {
	requestRepo  ports.RequestRepository
	reminderRepo ports.ReminderRepository
	grace        time.Duration
	interval     time.Duration
	log          zerolog.Logger
}

// NewSweeper creates a Sweeper. grace is the same window the Purger uses.
func NewSweeper(
	requestRepo ports.RequestRepository,
	reminderRepo ports.ReminderRepository,
	grace, interval time.Duration,
	log zerolog.Logger,
) *Sweeper {
	return &Sweeper{
		requestRepo:  requestRepo,
		reminderRepo: reminderRepo,
		grace:        grace,
		interval:     interval,
		log:          log,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()

	purged, err := s.requestRepo.DeleteTerminalOlderThan(ctx, now.Add(-s.grace))
	if err != nil {
		s.log.Warn().Err(err).Msg("request sweep failed")
	} else if purged > 0 {
		s.log.Info().Int64("purged", purged).Msg("stale settled requests removed")
	}

	expired, err := s.reminderRepo.ExpireOverdue(ctx, now)
	if err != nil {
		s.log.Warn().Err(err).Msg("reminder sweep failed")
	} else if expired > 0 {
		s.log.Info().Int64("expired", expired).Msg("overdue reminders expired")
	}
}
