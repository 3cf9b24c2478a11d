package ports

import (
	"context"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/query"
)

// VisitRepository defines persistence operations for site visits.
type VisitRepository interface {
	Create(ctx context.Context, v *domain.SiteVisit) error
	FindByID(ctx context.Context, id string) (*domain.SiteVisit, error)
	// ListByVisitor returns every visit when visitorID is empty.
	ListByVisitor(ctx context.Context, visitorID string) ([]domain.SiteVisit, error)
	Update(ctx context.Context, v *domain.SiteVisit) error
}

// BookVisitInput carries a booking form submission.
type BookVisitInput struct {
	PlotID   string
	Name     string
	Email    string
	Phone    string
	Date     string
	TimeSlot string
	Message  string
}

// FeedbackInput carries the post-visit feedback form.
type FeedbackInput struct {
	Rating               int
	Experience           string
	Suggestions          string
	InterestedInPurchase *bool
}

type VisitService interface {
	Book(ctx context.Context, actor *domain.Session, in BookVisitInput) (*domain.SiteVisit, error)
	List(ctx context.Context, actor *domain.Session, q query.Query) ([]domain.SiteVisit, error)
	Approve(ctx context.Context, actor *domain.Session, id string) (*domain.SiteVisit, error)
	UpdateStatus(ctx context.Context, actor *domain.Session, id string, status domain.VisitStatus) (*domain.SiteVisit, error)
	SubmitFeedback(ctx context.Context, actor *domain.Session, id string, in FeedbackInput) (*domain.SiteVisit, error)
}
