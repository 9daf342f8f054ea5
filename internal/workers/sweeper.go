// Package workers contains the application's background jobs.
package workers

import (
	"context"
	"time"

	"github.com/akhmadiev/storefront/internal/config"
	"github.com/akhmadiev/storefront/internal/logger"
	"github.com/akhmadiev/storefront/internal/service"
)

// ResetTokenSweeper periodically clears password-reset tokens that no
// longer validate (expired, or signed with a rotated secret). Without it,
// a token issued in no-expiry mode and then abandoned would sit in the
// users table forever.
type ResetTokenSweeper struct {
	authService service.AuthService
	interval    time.Duration
	logger      *logger.Logger
}

// NewResetTokenSweeper constructs a sweeper driven by the configured
// interval. An interval of zero disables the sweeper.
func NewResetTokenSweeper(authService service.AuthService, cfg config.Workers, logger *logger.Logger) *ResetTokenSweeper {
	return &ResetTokenSweeper{
		authService: authService,
		interval:    cfg.ResetTokenSweepInterval,
		logger:      logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. Intended
// to be launched in its own goroutine alongside the HTTP server.
func (s *ResetTokenSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("reset token sweeper disabled")
		return
	}

	s.logger.Info().Dur("interval", s.interval).Msg("reset token sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("reset token sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ResetTokenSweeper) sweep(ctx context.Context) {
	cleared, err := s.authService.SweepExpiredResetTokens(ctx)
	if err != nil {
		s.logger.Err(err).Msg("reset token sweep failed")
		return
	}

	if cleared > 0 {
		s.logger.Info().Int("cleared", cleared).Msg("stale reset tokens cleared")
	}
}
