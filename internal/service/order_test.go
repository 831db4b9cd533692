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

type orderFixture struct {
	orderRepo *mocks.MockOrderRepo
	userRepo  *mocks.MockUserRepo
	svc       *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orderRepo: mocks.NewMockOrderRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
	}
	f.svc = NewOrderService(f.orderRepo, f.userRepo, newTestLogger(t))
	return f
}

func TestOrderService_Checkout(t *testing.T) {
	f := newOrderFixture(t)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, o *domain.Order) error {
			// the repository resolves prices and the total inside its transaction
			for i := range o.Items {
				o.Items[i].UnitPriceCents = 1500
				o.TotalCents += 1500 * int64(o.Items[i].Quantity)
			}
			return nil
		})

	order, err := f.svc.Checkout(context.Background(), "u1", []domain.CartLine{
		{ProductID: "p1", Quantity: 2},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(3000), order.TotalCents)
}

func TestOrderService_Checkout_MergesDuplicateLines(t *testing.T) {
	f := newOrderFixture(t)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	order, err := f.svc.Checkout(context.Background(), "u1", []domain.CartLine{
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p1", Quantity: 2},
	})

	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "p2", order.Items[1].ProductID)
	assert.Equal(t, 1, order.Items[1].Quantity)
}

func TestOrderService_Checkout_ItemsInProductIDOrder(t *testing.T) {
	f := newOrderFixture(t)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	// two carts holding the same products in opposite order must produce the
	// same item sequence, so the repository locks rows without deadlocking
	order, err := f.svc.Checkout(context.Background(), "u1", []domain.CartLine{
		{ProductID: "p9", Quantity: 1},
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p5", Quantity: 1},
	})

	require.NoError(t, err)
	require.Len(t, order.Items, 3)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, "p5", order.Items[1].ProductID)
	assert.Equal(t, "p9", order.Items[2].ProductID)
}

func TestOrderService_Checkout_Validation(t *testing.T) {
	cases := []struct {
		name   string
		userID string
		lines  []domain.CartLine
	}{
		{"no user", "", []domain.CartLine{{ProductID: "p1", Quantity: 1}}},
		{"empty cart", "u1", nil},
		{"no product id", "u1", []domain.CartLine{{Quantity: 1}}},
		{"zero quantity", "u1", []domain.CartLine{{ProductID: "p1"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(t)

			order, err := f.svc.Checkout(context.Background(), tc.userID, tc.lines)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Nil(t, order)
		})
	}
}

func TestOrderService_Checkout_UserNotFound(t *testing.T) {
	f := newOrderFixture(t)

	f.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	order, err := f.svc.Checkout(context.Background(), "ghost", []domain.CartLine{
		{ProductID: "p1", Quantity: 1},
	})

	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, order)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	f := newOrderFixture(t)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrInsufficientStock)

	order, err := f.svc.Checkout(context.Background(), "u1", []domain.CartLine{
		{ProductID: "p1", Quantity: 50},
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, order)
}

func TestOrderService_ListByUser(t *testing.T) {
	f := newOrderFixture(t)

	orders := []*domain.Order{{ID: "o1", UserID: "u1", TotalCents: 3000}}
	f.orderRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(orders, nil)

	got, err := f.svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
