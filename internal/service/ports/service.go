package ports

import (
	"context"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
)

type ServiceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}
