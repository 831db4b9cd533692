package domain

import "time"

// Service is a bookable barbershop service. Reference data: created by an
// administrator, read-only to the booking flow.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	DurationMin int       `json:"duration_min"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateServiceInput struct {
	Name        string
	PriceCents  int64
	DurationMin int
	Description string
	ImageURL    string
}
