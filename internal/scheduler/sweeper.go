package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type idleSweeper interface {
	SweepIdle(ctx context.Context, idleFor time.Duration) (int, error)
}

// Sweeper periodically drops wizard sessions nobody has touched for idleFor.
type Sweeper struct {
	cron    *cron.Cron
	svc     idleSweeper
	idleFor time.Duration
	log     *zap.Logger
}

// NewSweeper accepts standard cron expressions and descriptors such as "@every 1m".
func NewSweeper(svc idleSweeper, schedule string, idleFor time.Duration, log *zap.Logger) (*Sweeper, error) {
	if idleFor <= 0 {
		return nil, fmt.Errorf("idle ttl must be positive, got %s", idleFor)
	}

	s := &Sweeper{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		svc:     svc,
		idleFor: idleFor,
		log:     log.With(zap.String("job", "wizard_sweeper")),
	}

	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.log.Info("Wizard sweeper started", zap.Duration("idle_ttl", s.idleFor))
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Wizard sweeper did not stop in time")
	}
}

func (s *Sweeper) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.svc.SweepIdle(ctx, s.idleFor)
	if err != nil {
		s.log.Error("Wizard sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.log.Debug("Wizard sweep finished", zap.Int("removed", removed))
	}
}
