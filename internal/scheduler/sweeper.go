package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// StaleSweeper - то, что умеет проверять лодки на молчание трекера
type StaleSweeper interface {
	SweepStale(ctx context.Context, now time.Time) (int, error)
}

// Sweeper периодически запускает проверку устаревших позиций.
// Часы принадлежат ему, а не ядру отслеживания.
type Sweeper struct {
	target   StaleSweeper
	interval time.Duration
	logger   *logrus.Logger
	now      func() time.Time
}

// NewSweeper создает новый Sweeper
func NewSweeper(target StaleSweeper, interval time.Duration, logger *logrus.Logger) *Sweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Sweeper{
		target:   target,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start запускает горутину с тикером до отмены контекста
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval).Info("Starting stale position sweeper...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping stale position sweeper.")
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// runOnce выполняет один обход и возвращает число новых инцидентов
func (s *Sweeper) runOnce(ctx context.Context) int {
	n, err := s.target.SweepStale(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.WithError(err).Error("Stale position sweep failed")
		}
		return n
	}
	if n > 0 {
		s.logger.WithField("count", n).Debug("Stale position sweep reported boats")
	}
	return n
}
