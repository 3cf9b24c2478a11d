package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

type SellRequestService struct {
	requests ports.SellRequestRepository
	plots    ports.PlotRepository
	log      zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewSellRequestService(requests ports.SellRequestRepository, plots ports.PlotRepository, log zerolog.Logger) *SellRequestService {
	return &SellRequestService{
		requests: requests,
		plots:    plots,
		log:      log.With().Str("component", "sell_requests").Logger(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit files a sell request for a plot the actor owns. An empty asking
// price defaults to the plot's value estimate.
func (s *SellRequestService) Submit(ctx context.Context, actor *domain.Session, in ports.SellRequestInput) (*domain.SellRequest, error) {
	if !in.TermsAccepted {
		return nil, fmt.Errorf("%w: terms must be accepted", domain.ErrValidation)
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = domain.UrgencyNormal
	}
	switch urgency {
	case domain.UrgencyLow, domain.UrgencyNormal, domain.UrgencyHigh:
	default:
		return nil, fmt.Errorf("%w: urgency must be one of low, normal, high", domain.ErrValidation)
	}

	plot, err := s.plots.FindByID(ctx, in.PlotID)
	if err != nil {
		return nil, err
	}
	if plot.OwnerID != actor.ActorID {
		return nil, domain.ErrForbidden
	}

	asking := strings.TrimSpace(in.AskingPrice)
	if asking == "" {
		asking = plot.ValueEstimate
	}

	r := &domain.SellRequest{
		ID:              s.newID(),
		PlotID:          plot.ID,
		ClientID:        actor.ActorID,
		AskingPrice:     asking,
		Reason:          strings.TrimSpace(in.Reason),
		Urgency:         urgency,
		AgentAssistance: in.AgentAssistance,
		Status:          domain.SellRequestSubmitted,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		s.log.Error().Err(err).Str("plot_id", plot.ID).Msg("failed to create sell request")
		return nil, err
	}

	s.log.Info().Str("request_id", r.ID).Str("plot_id", r.PlotID).Str("client_id", r.ClientID).Msg("sell request submitted")
	return r, nil
}

func (s *SellRequestService) List(ctx context.Context, actor *domain.Session) ([]domain.SellRequest, error) {
	return s.requests.ListByClient(ctx, actor.ActorID)
}
