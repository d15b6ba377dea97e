package repository

import (
	"context"
	"sync"
	"time"

	"freight-booking/internal/booking"

	"go.uber.org/zap"
)

// WizardRepository keeps live booking flows in process memory. Drafts are
// transient by contract, so nothing here touches the database.
type WizardRepository interface {
	Save(ctx context.Context, flow *booking.Flow) error
	FindByID(ctx context.Context, id string) (*booking.Flow, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteIdleSince(ctx context.Context, cutoff time.Time) ([]string, error)
	Count(ctx context.Context) int
}

type wizardEntry struct {
	flow     *booking.Flow
	lastSeen time.Time
}

type wizardRepository struct {
	mu      sync.Mutex
	entries map[string]*wizardEntry
	now     func() time.Time
	log     *zap.Logger
}

func NewWizardRepository(log *zap.Logger) WizardRepository {
	return newWizardRepository(time.Now, log)
}

func newWizardRepository(now func() time.Time, log *zap.Logger) *wizardRepository {
	return &wizardRepository{
		entries: make(map[string]*wizardEntry),
		now:     now,
		log:     log.With(zap.String("repository", "wizard")),
	}
}

func (r *wizardRepository) Save(ctx context.Context, flow *booking.Flow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[flow.ID()] = &wizardEntry{flow: flow, lastSeen: r.now()}
	return nil
}

// FindByID returns nil, nil for unknown ids. A hit counts as activity.
func (r *wizardRepository) FindByID(ctx context.Context, id string) (*booking.Flow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	entry.lastSeen = r.now()
	return entry.flow, nil
}

func (r *wizardRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false, nil
	}
	delete(r.entries, id)
	return true, nil
}

// DeleteIdleSince drops flows not touched after cutoff. Flows with a
// submission in flight are kept until it settles.
func (r *wizardRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, entry := range r.entries {
		if !entry.lastSeen.Before(cutoff) {
			continue
		}
		if entry.flow.Snapshot().Submitting {
			continue
		}
		delete(r.entries, id)
		removed = append(removed, id)
	}

	if len(removed) > 0 {
		r.log.Debug("Idle wizard sessions removed", zap.Int("count", len(removed)))
	}
	return removed, nil
}

func (r *wizardRepository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
