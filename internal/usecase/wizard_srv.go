package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-booking/internal/booking"
	"freight-booking/internal/data/repository"
	"freight-booking/internal/dto/request"
	"freight-booking/internal/dto/response"
	"freight-booking/pkg/utils"

	"go.uber.org/zap"
)

var ErrWizardNotFound = errors.New("wizard not found")

// OrdersPath is where the portal sends the customer after a booking is accepted.
const OrdersPath = "/orders"

type WizardService interface {
	Start(ctx context.Context) (*response.WizardResponse, error)
	Get(ctx context.Context, id string) (*response.WizardResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateWizardRequest) (*response.WizardResponse, error)
	Next(ctx context.Context, id string) (*response.WizardResponse, error)
	Back(ctx context.Context, id string) (*response.WizardResponse, error)

	// Submit and Resume return a *booking.AuthRequiredError when the session
	// is anonymous; the wizard stays on the confirm step in that case.
	Submit(ctx context.Context, id string, sess *booking.Session) (*response.SubmissionResponse, error)
	Resume(ctx context.Context, id string, sess *booking.Session) (*response.SubmissionResponse, error)
	Abandon(ctx context.Context, id string) error

	Estimate(ctx context.Context, serviceType string) (*response.EstimateResponse, error)
	SweepIdle(ctx context.Context, idleFor time.Duration) (int, error)
}

type wizardService struct {
	repo      repository.WizardRepository
	submitter booking.OrderSubmitter
	login     booking.LoginRequester
	now       func() time.Time
	log       *zap.Logger
}

func NewWizardService(
	repo repository.WizardRepository,
	submitter booking.OrderSubmitter,
	login booking.LoginRequester,
	log *zap.Logger,
) WizardService {
	return &wizardService{
		repo:      repo,
		submitter: submitter,
		login:     login,
		now:       time.Now,
		log:       log.With(zap.String("service", "wizard")),
	}
}

func (s *wizardService) Start(ctx context.Context) (*response.WizardResponse, error) {
	flow := booking.NewFlow(utils.GenerateWizardID(), s.submitter, s.login)
	if err := s.repo.Save(ctx, flow); err != nil {
		s.log.Error("Failed to save wizard", zap.Error(err))
		return nil, fmt.Errorf("save wizard: %w", err)
	}

	s.log.Info("Wizard started", zap.String("wizard_id", flow.ID()))

	resp := response.WizardToResponse(flow.Snapshot())
	return &resp, nil
}

func (s *wizardService) Get(ctx context.Context, id string) (*response.WizardResponse, error) {
	flow, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.WizardToResponse(flow.Snapshot())
	return &resp, nil
}

func (s *wizardService) Update(ctx context.Context, id string, req *request.UpdateWizardRequest) (*response.WizardResponse, error) {
	flow, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := flow.Update(req.ToPatch())
	if err != nil {
		s.log.Warn("Wizard update rejected", zap.String("wizard_id", id), zap.Error(err))
		return nil, err
	}

	resp := response.WizardToResponse(snap)
	return &resp, nil
}

func (s *wizardService) Next(ctx context.Context, id string) (*response.WizardResponse, error) {
	flow, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := flow.Next()
	if err != nil {
		s.log.Debug("Wizard step not advanced",
			zap.String("wizard_id", id),
			zap.Int("step", snap.Step.Number()),
			zap.Error(err))
		return nil, err
	}

	s.log.Debug("Wizard advanced",
		zap.String("wizard_id", id),
		zap.String("step", snap.Step.Name()))

	resp := response.WizardToResponse(snap)
	return &resp, nil
}

func (s *wizardService) Back(ctx context.Context, id string) (*response.WizardResponse, error) {
	flow, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	snap, err := flow.Back()
	if err != nil {
		return nil, err
	}

	resp := response.WizardToResponse(snap)
	return &resp, nil
}

func (s *wizardService) Submit(ctx context.Context, id string, sess *booking.Session) (*response.SubmissionResponse, error) {
	flow, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := flow.Submit(ctx, sess)
	return s.settle(ctx, flow, order, err)
}

func (s *wizardService) Resume(ctx context.Context, id string, sess *booking.Session) (*response.SubmissionResponse, error) {
	flow, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := flow.Resume(ctx, sess)
	return s.settle(ctx, flow, order, err)
}

// settle logs the outcome of a submit and drops the flow once the backend
// has accepted the order.
func (s *wizardService) settle(ctx context.Context, flow *booking.Flow, order booking.Order, err error) (*response.SubmissionResponse, error) {
	id := flow.ID()

	var authErr *booking.AuthRequiredError
	switch {
	case errors.As(err, &authErr):
		s.log.Info("Wizard submission waiting for login", zap.String("wizard_id", id))
		return nil, err
	case errors.Is(err, booking.ErrSubmissionFailed):
		s.log.Error("Booking submission failed", zap.String("wizard_id", id), zap.Error(err))
		return nil, err
	case err != nil:
		s.log.Warn("Wizard submission rejected", zap.String("wizard_id", id), zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to drop completed wizard", zap.String("wizard_id", id), zap.Error(err))
	}

	s.log.Info("Booking submitted",
		zap.String("wizard_id", id),
		zap.String("customer_id", order.CustomerID),
		zap.String("service_type", order.ServiceType.String()),
		zap.String("estimated_price", order.EstimatedPrice.StringFixed(2)))

	resp := response.SubmissionToResponse(id, order, OrdersPath)
	return &resp, nil
}

func (s *wizardService) Abandon(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete wizard", zap.String("wizard_id", id), zap.Error(err))
		return fmt.Errorf("delete wizard %s: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrWizardNotFound, id)
	}

	s.log.Info("Wizard abandoned", zap.String("wizard_id", id))
	return nil
}

func (s *wizardService) Estimate(ctx context.Context, serviceType string) (*response.EstimateResponse, error) {
	st, err := booking.ParseServiceType(serviceType)
	if err != nil {
		return nil, err
	}

	surcharge, err := booking.Surcharge(st)
	if err != nil {
		return nil, err
	}
	price, err := booking.EstimatePrice(st)
	if err != nil {
		return nil, err
	}

	return &response.EstimateResponse{
		ServiceType:    st.String(),
		BaseFee:        booking.BaseFee.StringFixed(2),
		Surcharge:      surcharge.StringFixed(2),
		EstimatedPrice: price.StringFixed(2),
	}, nil
}

func (s *wizardService) SweepIdle(ctx context.Context, idleFor time.Duration) (int, error) {
	removed, err := s.repo.DeleteIdleSince(ctx, s.now().Add(-idleFor))
	if err != nil {
		s.log.Error("Failed to sweep idle wizards", zap.Error(err))
		return 0, fmt.Errorf("sweep idle wizards: %w", err)
	}

	if len(removed) > 0 {
		s.log.Info("Idle wizards expired", zap.Int("count", len(removed)))
	}
	return len(removed), nil
}

func (s *wizardService) find(ctx context.Context, id string) (*booking.Flow, error) {
	wizardID, err := utils.ParseWizardID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrWizardNotFound, id)
	}

	flow, err := s.repo.FindByID(ctx, wizardID)
	if err != nil {
		s.log.Error("Failed to load wizard", zap.String("wizard_id", wizardID), zap.Error(err))
		return nil, fmt.Errorf("find wizard %s: %w", wizardID, err)
	}
	if flow == nil {
		return nil, fmt.Errorf("%w: %s", ErrWizardNotFound, wizardID)
	}
	return flow, nil
}
