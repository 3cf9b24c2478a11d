package ports

import (
	"context"

	"github.com/realto/plots-api/internal/core/domain"
)

type AttendanceRepository interface {
	// FindByManagerDay returns domain.ErrRecordNotFound when nothing was marked.
	FindByManagerDay(ctx context.Context, managerID, day string) (*domain.Attendance, error)
	Create(ctx context.Context, a *domain.Attendance) error
}

type AttendanceService interface {
	Mark(ctx context.Context, actor *domain.Session, at domain.Coordinates) (*domain.Attendance, error)
}
