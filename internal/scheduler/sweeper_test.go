package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSweeper struct {
	mu      sync.Mutex
	calls   int
	idleFor time.Duration
	err     error
}

func (c *countingSweeper) SweepIdle(ctx context.Context, idleFor time.Duration) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.idleFor = idleFor
	return 2, c.err
}

func (c *countingSweeper) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestNewSweeper_RejectsBadInput(t *testing.T) {
	_, err := NewSweeper(&countingSweeper{}, "not a schedule", time.Minute, zap.NewNop())
	assert.Error(t, err)

	_, err = NewSweeper(&countingSweeper{}, "@every 1m", 0, zap.NewNop())
	assert.Error(t, err)
}

func TestSweeper_TickPassesTTL(t *testing.T) {
	svc := &countingSweeper{}
	s, err := NewSweeper(svc, "@every 1h", 30*time.Minute, zap.NewNop())
	require.NoError(t, err)

	s.tick()
	assert.Equal(t, 1, svc.count())
	assert.Equal(t, 30*time.Minute, svc.idleFor)

	svc.err = errors.New("store down")
	s.tick()
	assert.Equal(t, 2, svc.count())
}

func TestSweeper_RunsOnSchedule(t *testing.T) {
	svc := &countingSweeper{}
	s, err := NewSweeper(svc, "@every 1s", time.Minute, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return svc.count() > 0 }, 3*time.Second, 50*time.Millisecond)
}
