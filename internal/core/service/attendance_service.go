package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

const defaultSiteRadiusM = 500.0

// AttendanceService records manager check-ins at project sites.
type AttendanceService struct {
	repo     ports.AttendanceRepository
	projects ports.ProjectRepository
	radiusM  float64
	log      zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewAttendanceService(repo ports.AttendanceRepository, projects ports.ProjectRepository, radiusM float64, log zerolog.Logger) *AttendanceService {
	if radiusM <= 0 {
		radiusM = defaultSiteRadiusM
	}
	return &AttendanceService{
		repo:     repo,
		projects: projects,
		radiusM:  radiusM,
		log:      log.With().Str("component", "attendance").Logger(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Mark checks the manager in when at lies within the radius of a project
// site. Only one check-in per UTC day is kept.
func (s *AttendanceService) Mark(ctx context.Context, actor *domain.Session, at domain.Coordinates) (*domain.Attendance, error) {
	if actor.Role != domain.RoleManager {
		return nil, domain.ErrForbidden
	}
	if at.Lat < -90 || at.Lat > 90 || at.Lng < -180 || at.Lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}

	now := s.now().UTC()
	day := now.Format(dateLayout)

	_, err := s.repo.FindByManagerDay(ctx, actor.ActorID, day)
	switch {
	case err == nil:
		return nil, domain.ErrAttendanceMarked
	case !errors.Is(err, domain.ErrRecordNotFound):
		return nil, err
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	site, dist := nearestSite(projects, at)
	if site == nil || dist > s.radiusM {
		s.log.Info().Str("manager_id", actor.ActorID).Float64("distance_m", dist).Msg("attendance rejected outside site")
		return nil, domain.ErrOutsideSite
	}

	a := &domain.Attendance{
		ID:        s.newID(),
		ManagerID: actor.ActorID,
		Day:       day,
		Location:  at,
		ProjectID: site.ID,
		DistanceM: math.Round(dist),
		MarkedAt:  now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.log.Info().Str("manager_id", a.ManagerID).Str("project_id", a.ProjectID).Msg("attendance marked")
	return a, nil
}

func nearestSite(projects []domain.Project, at domain.Coordinates) (*domain.Project, float64) {
	here := orb.Point{at.Lng, at.Lat}
	var (
		best     *domain.Project
		bestDist = math.Inf(1)
	)
	for i := range projects {
		p := &projects[i]
		d := geo.Distance(here, orb.Point{p.Site.Lng, p.Site.Lat})
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist
}
