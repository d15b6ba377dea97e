package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"freight-booking/pkg/utils"
)

// OrderSubmitter sends an assembled order to the order-creation endpoint.
// Any error means the backend did not accept the order.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, token string, order Order) error
}

// LoginRequester starts the external login for a paused flow.
type LoginRequester interface {
	RequestLogin(ctx context.Context, flowID string) (LoginChallenge, error)
}

// Session is the caller's auth state. A nil Session is anonymous.
type Session struct {
	CustomerID string
	Token      string
}

func (s *Session) Authenticated() bool {
	return s != nil && s.CustomerID != ""
}

// Snapshot is a copy of a flow's state for rendering.
type Snapshot struct {
	ID           string
	Step         Step
	Draft        Draft
	AwaitingAuth bool
	Submitting   bool
	Completed    bool
}

// Flow drives one wizard session through its three steps. It is safe for
// concurrent use; at most one submission is in flight at a time.
type Flow struct {
	id        string
	submitter OrderSubmitter
	login     LoginRequester

	mu           sync.Mutex
	step         Step
	draft        Draft
	awaitingAuth bool
	submitting   bool
	completed    bool
}

func NewFlow(id string, submitter OrderSubmitter, login LoginRequester) *Flow {
	return &Flow{
		id:        id,
		submitter: submitter,
		login:     login,
		step:      ServiceDetailsStep{},
	}
}

func (f *Flow) ID() string {
	return f.id
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() Snapshot {
	return Snapshot{
		ID:           f.id,
		Step:         f.step,
		Draft:        f.draft,
		AwaitingAuth: f.awaitingAuth,
		Submitting:   f.submitting,
		Completed:    f.completed,
	}
}

// Update applies a partial edit. Only fields rendered on the current step may
// change, so a computed estimate always matches the draft it was priced from.
func (f *Flow) Update(p DraftPatch) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editableLocked(); err != nil {
		return f.snapshotLocked(), err
	}
	if !owns(f.step, p) {
		return f.snapshotLocked(), fmt.Errorf("%w: %s", ErrFieldNotOnStep, f.step.Name())
	}

	f.draft.apply(p)
	return f.snapshotLocked(), nil
}

// Next advances the cursor when the current step's fields validate. On
// failure the flow and its draft are left exactly as they were.
func (f *Flow) Next() (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editableLocked(); err != nil {
		return f.snapshotLocked(), err
	}

	switch s := f.step.(type) {
	case ServiceDetailsStep:
		next, err := s.Next(f.draft)
		if err != nil {
			return f.snapshotLocked(), err
		}
		f.step = next
	case LogisticsStep:
		next, err := s.Next(f.draft)
		if err != nil {
			return f.snapshotLocked(), err
		}
		f.step = next
		f.draft.EstimatedPrice.Decimal = next.Price
		f.draft.EstimatedPrice.Valid = true
	case ConfirmStep:
		return f.snapshotLocked(), ErrNoNextStep
	}

	return f.snapshotLocked(), nil
}

// Back moves one step back without validation. It also drops a submission
// that was waiting for login.
func (f *Flow) Back() (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editableLocked(); err != nil {
		return f.snapshotLocked(), err
	}

	switch s := f.step.(type) {
	case LogisticsStep:
		f.step = s.Back()
	case ConfirmStep:
		f.step = s.Back()
	}
	f.awaitingAuth = false

	return f.snapshotLocked(), nil
}

// Submit sends the draft as an order. Without an authenticated session the
// flow stays on the confirm step, remembers the pending submit and returns an
// *AuthRequiredError; Resume finishes it once the user has logged in.
func (f *Flow) Submit(ctx context.Context, sess *Session) (Order, error) {
	f.mu.Lock()

	if err := f.editableLocked(); err != nil {
		f.mu.Unlock()
		return Order{}, err
	}
	confirm, ok := f.step.(ConfirmStep)
	if !ok {
		f.mu.Unlock()
		return Order{}, ErrNotConfirmStep
	}

	if !sess.Authenticated() {
		f.awaitingAuth = true
		f.mu.Unlock()
		return Order{}, f.requestLogin(ctx)
	}

	order, err := confirm.Order(f.draft, sess.CustomerID)
	if err != nil {
		f.mu.Unlock()
		return Order{}, err
	}
	f.awaitingAuth = false
	f.submitting = true
	f.mu.Unlock()

	// Once started a submission cannot be aborted by the caller going away.
	err = f.submitter.SubmitOrder(context.WithoutCancel(ctx), sess.Token, order)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		return Order{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	f.completed = true
	f.draft = Draft{}
	f.step = ServiceDetailsStep{}
	return order, nil
}

// Resume completes a submission that was paused for authentication.
func (f *Flow) Resume(ctx context.Context, sess *Session) (Order, error) {
	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		return Order{}, ErrFlowCompleted
	}
	if !f.awaitingAuth {
		f.mu.Unlock()
		return Order{}, ErrNoPendingSubmission
	}
	f.mu.Unlock()

	return f.Submit(ctx, sess)
}

func (f *Flow) editableLocked() error {
	if f.completed {
		return ErrFlowCompleted
	}
	if f.submitting {
		return ErrSubmissionInFlight
	}
	return nil
}

func (f *Flow) requestLogin(ctx context.Context) error {
	challenge, err := f.login.RequestLogin(ctx, f.id)
	if err != nil {
		return fmt.Errorf("request login for flow %s: %w", f.id, err)
	}
	return &AuthRequiredError{Challenge: challenge}
}

// ValidationFields returns the per-field messages of a failed step
// transition, or nil when err is not a validation failure.
func ValidationFields(err error) map[string]string {
	var ve *utils.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
