package ports

import (
	"context"
	"time"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
)

type AppointmentRepo interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateSlot(ctx context.Context, id string, date time.Time, slot string) error
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	ListByUser(ctx context.Context, userID string) ([]*domain.UserAppointment, error)
	BookedSlots(ctx context.Context, date time.Time) ([]string, error)
	CompletePast(ctx context.Context) ([]*domain.Appointment, error)
}
