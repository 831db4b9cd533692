package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AppointmentService struct {
	apptRepo    ports.AppointmentRepo
	serviceRepo ports.ServiceRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewAppointmentService(
	apptRepo ports.AppointmentRepo,
	serviceRepo ports.ServiceRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *AppointmentService {
	return &AppointmentService{
		apptRepo:    apptRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book validates and persists a new appointment with status scheduled. The
// first violated precondition wins; nothing is written on failure. The slot
// collision check lives in the repository transaction, backed by the partial
// unique index, so a racing duplicate surfaces here as ErrSlotTaken too.
func (s *AppointmentService) Book(ctx context.Context, input domain.BookAppointmentInput) (*domain.Appointment, error) {
	switch {
	case input.UserID == "":
		return nil, fmt.Errorf("%w: user id is required", domain.ErrIncompleteInput)
	case input.ServiceID == "":
		return nil, fmt.Errorf("%w: service id is required", domain.ErrIncompleteInput)
	case input.Date.IsZero():
		return nil, fmt.Errorf("%w: date is required", domain.ErrIncompleteInput)
	case input.Slot == "":
		return nil, fmt.Errorf("%w: time slot is required", domain.ErrIncompleteInput)
	}

	moment, err := domain.SlotMoment(input.Date, input.Slot)
	if err != nil {
		return nil, err
	}
	if !moment.After(time.Now()) {
		return nil, domain.ErrPastSlot
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	now := time.Now().UTC()
	a := &domain.Appointment{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		ServiceID: input.ServiceID,
		Date:      input.Date,
		Slot:      input.Slot,
		Status:    domain.AppointmentStatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.apptRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info("appointment booked",
		logger.String("appointment_id", a.ID),
		logger.String("user_id", a.UserID),
		logger.String("service_id", a.ServiceID),
		logger.String("date", a.Date.Format("2006-01-02")),
		logger.String("slot", a.Slot),
	)

	go s.notifier.NotifyAppointmentBooked(context.WithoutCancel(ctx), user, svc, a)

	return a, nil
}

// Cancel sets a scheduled appointment to canceled, freeing its slot
// immediately. Canceling an already-canceled appointment is a no-op success;
// a completed one cannot be canceled.
func (s *AppointmentService) Cancel(ctx context.Context, id string) (*domain.Appointment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: appointment id is required", domain.ErrIncompleteInput)
	}

	a, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	switch a.Status {
	case domain.AppointmentStatusCanceled:
		return a, nil
	case domain.AppointmentStatusCompleted:
		return nil, fmt.Errorf("%w: appointment is completed", domain.ErrNotScheduled)
	}

	if err = s.apptRepo.UpdateStatus(ctx, id, domain.AppointmentStatusCanceled); err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}
	a.Status = domain.AppointmentStatusCanceled

	s.logger.Info("appointment canceled",
		logger.String("appointment_id", a.ID),
		logger.String("user_id", a.UserID),
	)

	if user, userErr := s.userRepo.GetByID(ctx, a.UserID); userErr == nil {
		go s.notifier.NotifyAppointmentCanceled(context.WithoutCancel(ctx), user, a)
	}

	return a, nil
}

// Reschedule moves a scheduled appointment to a new future, collision-free
// date and slot. Status is unchanged; on failure the original date and slot
// stay intact.
func (s *AppointmentService) Reschedule(ctx context.Context, id string, date time.Time, slot string) (*domain.Appointment, error) {
	switch {
	case id == "":
		return nil, fmt.Errorf("%w: appointment id is required", domain.ErrIncompleteInput)
	case date.IsZero():
		return nil, fmt.Errorf("%w: date is required", domain.ErrIncompleteInput)
	case slot == "":
		return nil, fmt.Errorf("%w: time slot is required", domain.ErrIncompleteInput)
	}

	moment, err := domain.SlotMoment(date, slot)
	if err != nil {
		return nil, err
	}
	if !moment.After(time.Now()) {
		return nil, domain.ErrPastSlot
	}

	a, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if a.Status != domain.AppointmentStatusScheduled {
		return nil, domain.ErrNotScheduled
	}

	if err = s.apptRepo.UpdateSlot(ctx, id, date, slot); err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}
	a.Date = date
	a.Slot = slot

	s.logger.Info("appointment rescheduled",
		logger.String("appointment_id", a.ID),
		logger.String("date", date.Format("2006-01-02")),
		logger.String("slot", slot),
	)

	if user, userErr := s.userRepo.GetByID(ctx, a.UserID); userErr == nil {
		go s.notifier.NotifyAppointmentRescheduled(context.WithoutCancel(ctx), user, a)
	}

	return a, nil
}

// ListByUser returns the user's full appointment history, most recent first,
// with service names resolved for display.
func (s *AppointmentService) ListByUser(ctx context.Context, userID string) ([]*domain.UserAppointment, error) {
	return s.apptRepo.ListByUser(ctx, userID)
}

// CompletePast marks scheduled appointments whose slot has passed as
// completed. Run by the background scheduler.
func (s *AppointmentService) CompletePast(ctx context.Context) ([]*domain.Appointment, error) {
	completed, err := s.apptRepo.CompletePast(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete past: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("past appointments completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
