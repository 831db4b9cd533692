package ports

import (
	"context"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
)

type BookingNotifier interface {
	NotifyAppointmentBooked(ctx context.Context, user *domain.User, svc *domain.Service, a *domain.Appointment)
	NotifyAppointmentCanceled(ctx context.Context, user *domain.User, a *domain.Appointment)
	NotifyAppointmentRescheduled(ctx context.Context, user *domain.User, a *domain.Appointment)
}
