package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports"
)

// CatalogService covers the shop's reference data: bookable services and
// retail products. Creation is an administrator action; the booking and
// checkout flows only read.
type CatalogService struct {
	serviceRepo ports.ServiceRepo
	productRepo ports.ProductRepo
}

func NewCatalogService(serviceRepo ports.ServiceRepo, productRepo ports.ProductRepo) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
	}
}

func (s *CatalogService) CreateService(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if input.DurationMin <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		ID:          uuid.New().String(),
		Name:        input.Name,
		PriceCents:  input.PriceCents,
		DurationMin: input.DurationMin,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	return svc, nil
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		PriceCents:  input.PriceCents,
		Stock:       input.Stock,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return p, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}
