package service

import (
	"context"
	"fmt"
	"time"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports"
)

// SlotWindow describes the bookable business day: slots every Step from
// OpenHour to CloseHour, the closing slot included.
type SlotWindow struct {
	OpenHour  int
	CloseHour int
	Step      time.Duration
}

// Grid enumerates the candidate slot labels for any day. Pure function of the
// window: no per-day variation, no holidays.
func (w SlotWindow) Grid() []string {
	open := time.Date(2000, 1, 1, w.OpenHour, 0, 0, 0, time.UTC)
	close := time.Date(2000, 1, 1, w.CloseHour, 0, 0, 0, time.UTC)

	var slots []string
	for t := open; !t.After(close); t = t.Add(w.Step) {
		slots = append(slots, t.Format(domain.SlotLayout))
	}

	return slots
}

type AvailabilityService struct {
	apptRepo ports.AppointmentRepo
	window   SlotWindow
}

func NewAvailabilityService(apptRepo ports.AppointmentRepo, window SlotWindow) *AvailabilityService {
	return &AvailabilityService{
		apptRepo: apptRepo,
		window:   window,
	}
}

// AvailableSlots returns the ordered slot labels on the given date that are
// strictly in the future and not held by a non-canceled appointment. The
// result depends on the wall clock, so callers booking "today" should
// re-fetch rather than cache it.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, date time.Time) ([]string, error) {
	booked, err := s.apptRepo.BookedSlots(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("booked slots: %w", err)
	}

	return filterSlots(s.window.Grid(), date, time.Now(), booked), nil
}

func filterSlots(grid []string, date, now time.Time, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}

	res := make([]string, 0, len(grid))
	for _, slot := range grid {
		moment, err := domain.SlotMoment(date, slot)
		if err != nil {
			continue
		}
		if !moment.After(now) {
			continue
		}
		if _, ok := taken[slot]; ok {
			continue
		}
		res = append(res, slot)
	}

	return res
}
