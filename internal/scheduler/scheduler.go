package scheduler

import (
	"context"
	"time"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type appointmentCompleter interface {
	CompletePast(ctx context.Context) ([]*domain.Appointment, error)
}

// Scheduler periodically sweeps scheduled appointments whose slot has passed
// and marks them completed.
type Scheduler struct {
	appointments appointmentCompleter
	interval     time.Duration
	logger       logger.Logger
}

func New(
	appointments appointmentCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		appointments: appointments,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.appointments.CompletePast(ctx)
	if err != nil {
		s.logger.Error("failed to complete past appointments",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, a := range completed {
		s.logger.Info("appointment completed",
			logger.String("appointment_id", a.ID),
			logger.String("user_id", a.UserID),
			logger.String("date", a.Date.Format("2006-01-02")),
			logger.String("slot", a.Slot),
		)
	}
}
