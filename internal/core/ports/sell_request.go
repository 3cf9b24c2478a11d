package ports

import (
	"context"

	"github.com/realto/plots-api/internal/core/domain"
)

type SellRequestRepository interface {
	Create(ctx context.Context, r *domain.SellRequest) error
	ListByClient(ctx context.Context, clientID string) ([]domain.SellRequest, error)
}

// SellRequestInput carries the sell form.
type SellRequestInput struct {
	PlotID          string
	AskingPrice     string
	Reason          string
	Urgency         string
	AgentAssistance bool
	TermsAccepted   bool
}

type SellRequestService interface {
	Submit(ctx context.Context, actor *domain.Session, in SellRequestInput) (*domain.SellRequest, error)
	List(ctx context.Context, actor *domain.Session) ([]domain.SellRequest, error)
}
