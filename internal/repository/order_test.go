package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:     "o1",
		UserID: "u1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Quantity: 2},
		},
		Status:    domain.OrderStatusPaid,
		CreatedAt: time.Now().UTC(),
	}
}

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)
	o := testOrder()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT price_cents, stock FROM products")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"price_cents", "stock"}).AddRow(1500, 10))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = stock - $2")).
		WithArgs("p1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
		WithArgs("o1", "p1", 2, int64(1500)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), o)

	require.NoError(t, err)
	assert.Equal(t, int64(3000), o.TotalCents)
	assert.Equal(t, int64(1500), o.Items[0].UnitPriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create_InsufficientStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT price_cents, stock FROM products")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"price_cents", "stock"}).AddRow(1500, 1))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testOrder())

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Create_ProductNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT price_cents, stock FROM products")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"price_cents", "stock"}))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), testOrder())

	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
