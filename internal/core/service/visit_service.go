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
	"github.com/realto/plots-api/internal/core/query"
)

const dateLayout = "2006-01-02"

type VisitService struct {
	visits ports.VisitRepository
	plots  ports.PlotRepository
	log    zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewVisitService(visits ports.VisitRepository, plots ports.PlotRepository, log zerolog.Logger) *VisitService {
	return &VisitService{
		visits: visits,
		plots:  plots,
		log:    log.With().Str("component", "visits").Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Book records a site visit for an existing plot.
func (s *VisitService) Book(ctx context.Context, actor *domain.Session, in ports.BookVisitInput) (*domain.SiteVisit, error) {
	if err := s.validateBooking(in); err != nil {
		return nil, err
	}

	plot, err := s.plots.FindByID(ctx, in.PlotID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	v := &domain.SiteVisit{
		ID:          s.newID(),
		PlotID:      plot.ID,
		ProjectName: plot.ProjectName,
		PlotNumber:  plot.PlotNumber,
		VisitorID:   actor.ActorID,
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       in.Phone,
		Date:        in.Date,
		TimeSlot:    in.TimeSlot,
		Message:     in.Message,
		Status:      domain.VisitUpcoming,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.visits.Create(ctx, v); err != nil {
		s.log.Error().Err(err).Str("plot_id", plot.ID).Msg("failed to book site visit")
		return nil, err
	}

	s.log.Info().Str("visit_id", v.ID).Str("plot_id", v.PlotID).Str("visitor_id", v.VisitorID).Msg("site visit booked")
	return v, nil
}

func (s *VisitService) validateBooking(in ports.BookVisitInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Phone == "" || in.Date == "" || in.TimeSlot == "" || in.PlotID == "" {
		return fmt.Errorf("%w: please fill all required fields", domain.ErrValidation)
	}
	if !isTenDigits(in.Phone) {
		return fmt.Errorf("%w: please enter a valid 10-digit phone number", domain.ErrValidation)
	}
	day, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	today, _ := time.Parse(dateLayout, s.now().UTC().Format(dateLayout))
	if day.Before(today) {
		return fmt.Errorf("%w: date cannot be in the past", domain.ErrValidation)
	}
	return nil
}

// List returns the actor's own visits; managers see every visit.
func (s *VisitService) List(ctx context.Context, actor *domain.Session, q query.Query) ([]domain.SiteVisit, error) {
	if err := query.Visits.Validate(q); err != nil {
		return nil, err
	}
	visitorID := actor.ActorID
	if actor.Role == domain.RoleManager {
		visitorID = ""
	}
	visits, err := s.visits.ListByVisitor(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return query.Apply(visits, q, query.Visits), nil
}

func (s *VisitService) Approve(ctx context.Context, actor *domain.Session, id string) (*domain.SiteVisit, error) {
	if actor.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}
	v, err := s.visits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != domain.VisitUpcoming {
		return nil, fmt.Errorf("%w: cannot approve a %s visit", domain.ErrInvalidTransition, v.Status)
	}

	v.Approved = true
	v.ApprovedBy = actor.ActorID
	v.UpdatedAt = s.now().UTC()
	if err := s.visits.Update(ctx, v); err != nil {
		return nil, err
	}
	s.log.Info().Str("visit_id", v.ID).Str("manager_id", actor.ActorID).Msg("site visit approved")
	return v, nil
}

func (s *VisitService) UpdateStatus(ctx context.Context, actor *domain.Session, id string, status domain.VisitStatus) (*domain.SiteVisit, error) {
	if actor.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}
	v, err := s.visits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, v.Status, status)
	}

	v.Status = status
	v.UpdatedAt = s.now().UTC()
	if err := s.visits.Update(ctx, v); err != nil {
		return nil, err
	}
	s.log.Info().Str("visit_id", v.ID).Str("status", string(status)).Msg("site visit status changed")
	return v, nil
}

// SubmitFeedback stores the visitor's rating of a completed visit.
func (s *VisitService) SubmitFeedback(ctx context.Context, actor *domain.Session, id string, in ports.FeedbackInput) (*domain.SiteVisit, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: please provide a rating", domain.ErrValidation)
	}
	v, err := s.visits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.VisitorID != actor.ActorID {
		return nil, domain.ErrForbidden
	}
	if v.Status != domain.VisitCompleted {
		return nil, domain.ErrFeedbackNotAllowed
	}
	if v.Feedback != nil {
		return nil, fmt.Errorf("%w: feedback already submitted", domain.ErrDuplicateRecord)
	}

	now := s.now().UTC()
	v.Feedback = &domain.Feedback{
		Rating:               in.Rating,
		Experience:           strings.TrimSpace(in.Experience),
		Suggestions:          strings.TrimSpace(in.Suggestions),
		InterestedInPurchase: in.InterestedInPurchase,
		SubmittedAt:          now,
	}
	v.UpdatedAt = now
	if err := s.visits.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
