package scheduler

import (
	"context"
	"fmt"
	"time"

	"breachguard-backend/config"
	"breachguard-backend/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PendingReaper periodically expires PENDING payment records the
// provider never confirmed. Without it a record whose callback is lost
// stays PENDING forever.
type PendingReaper struct {
	cron       *cron.Cron
	paymentSvc ports.PaymentService
	cfg        config.ReaperConfig
	log        zerolog.Logger
}

// NewPendingReaper creates the reaper. It does nothing until Start.
func NewPendingReaper(paymentSvc ports.PaymentService, cfg config.ReaperConfig, log zerolog.Logger) *PendingReaper {
	return &PendingReaper{
		cron:       cron.New(),
		paymentSvc: paymentSvc,
		cfg:        cfg,
		log:        log,
	}
}

// Start schedules the reaper at the configured interval and runs one
// sweep immediately to catch records stranded across a restart.
func (r *PendingReaper) Start() error {
	if !r.cfg.Enabled {
		r.log.Info().Msg("pending payment reaper disabled")
		return nil
	}

	spec := fmt.Sprintf("@every %s", r.cfg.Interval)
	if _, err := r.cron.AddFunc(spec, r.sweep); err != nil {
		return fmt.Errorf("scheduling pending reaper: %w", err)
	}

	r.cron.Start()
	r.log.Info().
		Dur("interval", r.cfg.Interval).
		Dur("pending_ttl", r.cfg.PendingTTL).
		Msg("pending payment reaper started")

	go r.sweep()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (r *PendingReaper) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.log.Info().Msg("pending payment reaper stopped")
}

func (r *PendingReaper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := r.paymentSvc.ExpireStalePending(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("pending reaper sweep failed")
		return
	}
	if n > 0 {
		r.log.Info().Int64("expired", n).Msg("pending reaper sweep complete")
	}
}
