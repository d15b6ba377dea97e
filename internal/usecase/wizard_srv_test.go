package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"freight-booking/internal/booking"
	"freight-booking/internal/data/repository"
	"freight-booking/internal/dto/request"
	"freight-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSubmitter struct {
	mu     sync.Mutex
	orders []booking.Order
	tokens []string
	err    error
}

func (r *recordingSubmitter) SubmitOrder(ctx context.Context, token string, order booking.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	r.tokens = append(r.tokens, token)
	return r.err
}

type staticLogin struct{}

func (staticLogin) RequestLogin(ctx context.Context, flowID string) (booking.LoginChallenge, error) {
	return booking.LoginChallenge{RedirectURL: "https://id.example.com/login?wizard=" + flowID}, nil
}

func str(s string) *string { return &s }

func newWizardFixture(t *testing.T) (WizardService, repository.WizardRepository, *recordingSubmitter) {
	t.Helper()
	repo := repository.NewWizardRepository(zap.NewNop())
	sub := &recordingSubmitter{}
	return NewWizardService(repo, sub, staticLogin{}, zap.NewNop()), repo, sub
}

func walkToConfirm(t *testing.T, svc WizardService, id string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.Update(ctx, id, &request.UpdateWizardRequest{
		ServiceType:      str("OFFICE_RELOCATION"),
		CargoDescription: str("Twelve boxes and two desks"),
	})
	require.NoError(t, err)
	_, err = svc.Next(ctx, id)
	require.NoError(t, err)

	_, err = svc.Update(ctx, id, &request.UpdateWizardRequest{
		Pickup: &request.ContactRequest{
			Address: str("1 A St, Metropolis, CA"), ContactName: str("Alice"), ContactPhone: str("5551234567"),
		},
		Delivery: &request.ContactRequest{
			Address: str("2 B Ave, Gotham, NY"), ContactName: str("Bob"), ContactPhone: str("5557654321"),
		},
		RequestedPickupDateTime: str("2026-11-02T09:30"),
	})
	require.NoError(t, err)

	resp, err := svc.Next(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Step)
}

func TestWizardService_FullBooking(t *testing.T) {
	ctx := context.Background()
	svc, repo, sub := newWizardFixture(t)

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, started.Step)
	assert.Equal(t, "service_details", started.StepName)
	assert.Nil(t, started.Draft.EstimatedPrice)

	walkToConfirm(t, svc, started.ID)

	got, err := svc.Get(ctx, started.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Draft.EstimatedPrice)
	assert.Equal(t, "450.00", *got.Draft.EstimatedPrice)

	res, err := svc.Submit(ctx, started.ID, &booking.Session{CustomerID: "cust-1", Token: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "Metropolis", res.PickupCity)
	assert.Equal(t, "Gotham", res.DeliveryCity)
	assert.Equal(t, "450.00", res.EstimatedPrice)
	assert.Equal(t, OrdersPath, res.RedirectTo)

	require.Len(t, sub.orders, 1)
	assert.Equal(t, "tok", sub.tokens[0])

	_, err = svc.Get(ctx, started.ID)
	assert.ErrorIs(t, err, ErrWizardNotFound)
	assert.Zero(t, repo.Count(ctx))
}

func TestWizardService_NextReportsFieldErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWizardFixture(t)

	started, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Next(ctx, started.ID)
	require.ErrorIs(t, err, utils.ErrValidation)

	fields := booking.ValidationFields(err)
	assert.Contains(t, fields, "service_type")
	assert.Contains(t, fields, "cargo_description")

	got, err := svc.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Step)
}

func TestWizardService_UpdateRejectsFieldsOfOtherSteps(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWizardFixture(t)

	started, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Update(ctx, started.ID, &request.UpdateWizardRequest{
		RequestedPickupDateTime: str("2026-11-02"),
	})
	assert.ErrorIs(t, err, booking.ErrFieldNotOnStep)
}

func TestWizardService_AnonymousSubmitThenResume(t *testing.T) {
	ctx := context.Background()
	svc, _, sub := newWizardFixture(t)

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	walkToConfirm(t, svc, started.ID)

	_, err = svc.Submit(ctx, started.ID, nil)
	var authErr *booking.AuthRequiredError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Challenge.RedirectURL, started.ID)
	assert.Empty(t, sub.orders)

	got, err := svc.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.True(t, got.AwaitingAuth)
	assert.Equal(t, 3, got.Step)

	res, err := svc.Resume(ctx, started.ID, &booking.Session{CustomerID: "cust-9", Token: "t9"})
	require.NoError(t, err)
	assert.Equal(t, started.ID, res.WizardID)
	require.Len(t, sub.orders, 1)
	assert.Equal(t, "cust-9", sub.orders[0].CustomerID)

	_, err = svc.Resume(ctx, started.ID, &booking.Session{CustomerID: "cust-9"})
	assert.ErrorIs(t, err, ErrWizardNotFound)
	assert.Len(t, sub.orders, 1)
}

func TestWizardService_FailedSubmitKeepsDraft(t *testing.T) {
	ctx := context.Background()
	svc, _, sub := newWizardFixture(t)
	sub.err = errors.New("backend returned 500")

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	walkToConfirm(t, svc, started.ID)

	_, err = svc.Submit(ctx, started.ID, &booking.Session{CustomerID: "cust-1"})
	require.ErrorIs(t, err, booking.ErrSubmissionFailed)

	got, err := svc.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Step)
	assert.Equal(t, "Twelve boxes and two desks", got.Draft.CargoDescription)
	assert.False(t, got.Submitting)
}

func TestWizardService_AbandonAndUnknownIDs(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWizardFixture(t)

	started, err := svc.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, started.ID))
	assert.ErrorIs(t, svc.Abandon(ctx, started.ID), ErrWizardNotFound)

	_, err = svc.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrWizardNotFound)
}

func TestWizardService_Estimate(t *testing.T) {
	svc, _, _ := newWizardFixture(t)

	est, err := svc.Estimate(context.Background(), "residential_moving")
	require.NoError(t, err)
	assert.Equal(t, "RESIDENTIAL_MOVING", est.ServiceType)
	assert.Equal(t, "50.00", est.BaseFee)
	assert.Equal(t, "250.00", est.Surcharge)
	assert.Equal(t, "300.00", est.EstimatedPrice)

	_, err = svc.Estimate(context.Background(), "CARGO_SHIP")
	assert.ErrorIs(t, err, booking.ErrUnknownServiceType)
}

func TestWizardService_SweepIdle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewWizardRepository(zap.NewNop())
	svc := NewWizardService(repo, &recordingSubmitter{}, staticLogin{}, zap.NewNop()).(*wizardService)

	_, err := svc.Start(ctx)
	require.NoError(t, err)

	removed, err := svc.SweepIdle(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	removed, err = svc.SweepIdle(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Zero(t, repo.Count(ctx))
}
