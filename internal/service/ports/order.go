package ports

import (
	"context"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
