package domain

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

// BlockingStatuses are the statuses that keep a slot occupied.
// A canceled appointment frees its slot immediately.
var BlockingStatuses = []AppointmentStatus{AppointmentStatusScheduled, AppointmentStatusCompleted}

const SlotLayout = "15:04"

type Appointment struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	ServiceID string            `json:"service_id"`
	Date      time.Time         `json:"date"`
	Slot      string            `json:"slot"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UserAppointment is an appointment annotated with the service name for display.
type UserAppointment struct {
	Appointment
	ServiceName string `json:"service_name"`
}

type BookAppointmentInput struct {
	UserID    string
	ServiceID string
	Date      time.Time
	Slot      string
}

// SlotMoment combines a calendar date and a slot label into a moment in time.
func SlotMoment(date time.Time, slot string) (time.Time, error) {
	t, err := time.Parse(SlotLayout, slot)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid slot label %q", ErrValidation, slot)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location(),
	), nil
}
