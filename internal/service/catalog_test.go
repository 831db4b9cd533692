package service

import (
	"context"
	"testing"

	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateService(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewCatalogService(serviceRepo, productRepo)

	serviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateService(context.Background(), domain.CreateServiceInput{
		Name:        "Haircut",
		PriceCents:  3000,
		DurationMin: 30,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Haircut", created.Name)
	assert.Equal(t, int64(3000), created.PriceCents)
}

func TestCatalogService_CreateService_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input domain.CreateServiceInput
	}{
		{"no name", domain.CreateServiceInput{PriceCents: 3000, DurationMin: 30}},
		{"zero price", domain.CreateServiceInput{Name: "Haircut", DurationMin: 30}},
		{"negative price", domain.CreateServiceInput{Name: "Haircut", PriceCents: -1, DurationMin: 30}},
		{"zero duration", domain.CreateServiceInput{Name: "Haircut", PriceCents: 3000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCatalogService(mocks.NewMockServiceRepo(t), mocks.NewMockProductRepo(t))

			created, err := svc.CreateService(context.Background(), tc.input)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Nil(t, created)
		})
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewCatalogService(serviceRepo, productRepo)

	productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateProduct(context.Background(), domain.CreateProductInput{
		Name:       "Pomade",
		PriceCents: 1500,
		Stock:      10,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 10, created.Stock)
}

func TestCatalogService_CreateProduct_NegativeStock(t *testing.T) {
	svc := NewCatalogService(mocks.NewMockServiceRepo(t), mocks.NewMockProductRepo(t))

	created, err := svc.CreateProduct(context.Background(), domain.CreateProductInput{
		Name:       "Pomade",
		PriceCents: 1500,
		Stock:      -1,
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, created)
}

func TestCatalogService_ListServices(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	svc := NewCatalogService(serviceRepo, mocks.NewMockProductRepo(t))

	services := []*domain.Service{
		{ID: "s1", Name: "Haircut"},
		{ID: "s2", Name: "Shave"},
	}
	serviceRepo.EXPECT().List(mock.Anything).Return(services, nil)

	got, err := svc.ListServices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, services, got)
}

func TestCatalogService_ListProducts(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewCatalogService(mocks.NewMockServiceRepo(t), productRepo)

	products := []*domain.Product{{ID: "p1", Name: "Pomade", Stock: 3}}
	productRepo.EXPECT().List(mock.Anything).Return(products, nil)

	got, err := svc.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
}
