package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type OrderService struct {
	orderRepo ports.OrderRepo
	userRepo  ports.UserRepo
	logger    logger.Logger
}

func NewOrderService(orderRepo ports.OrderRepo, userRepo ports.UserRepo, logger logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Checkout turns a cart into a paid order. Stock verification and decrement
// happen inside the repository transaction; the payment gateway is simulated,
// so a successful checkout is immediately paid. Duplicate cart lines for the
// same product are merged.
func (s *OrderService) Checkout(ctx context.Context, userID string, lines []domain.CartLine) (*domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrValidation)
	}

	merged := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.ProductID == "" {
			return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
		}
		merged[line.ProductID] += line.Quantity
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	// items go in product id order: the checkout transaction locks product
	// rows in item order, and overlapping carts must lock in the same sequence
	ids := make([]string, 0, len(merged))
	for productID := range merged {
		ids = append(ids, productID)
	}
	sort.Strings(ids)

	items := make([]domain.OrderItem, 0, len(ids))
	for _, productID := range ids {
		items = append(items, domain.OrderItem{
			ProductID: productID,
			Quantity:  merged[productID],
		})
	}

	o := &domain.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     items,
		Status:    domain.OrderStatusPaid,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order placed",
		logger.String("order_id", o.ID),
		logger.String("user_id", userID),
		logger.Int("items", len(o.Items)),
		logger.Int64("total_cents", o.TotalCents),
	)

	return o, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}
