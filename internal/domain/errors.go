package domain

import "errors"

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

var (
	ErrIncompleteInput = errors.New("incomplete input")
	ErrPastSlot        = errors.New("past-slot booking rejected")
	ErrSlotTaken       = errors.New("slot already taken")
	ErrNotScheduled    = errors.New("appointment is not in scheduled status")
)

var (
	ErrEmailTaken        = errors.New("email is already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
)

var (
	ErrValidation = errors.New("validation error")
)
