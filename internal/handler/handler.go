package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/domain"
	"github.com/migueltomazini/barbershop-scheduler-sub001/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type CatalogSvc interface {
	CreateService(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	CreateProduct(ctx context.Context, input domain.CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type AvailabilitySvc interface {
	AvailableSlots(ctx context.Context, date time.Time) ([]string, error)
}

type AppointmentSvc interface {
	Book(ctx context.Context, input domain.BookAppointmentInput) (*domain.Appointment, error)
	Cancel(ctx context.Context, id string) (*domain.Appointment, error)
	Reschedule(ctx context.Context, id string, date time.Time, slot string) (*domain.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.UserAppointment, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type OrderSvc interface {
	Checkout(ctx context.Context, userID string, lines []domain.CartLine) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}

type Handler struct {
	catalogService      CatalogSvc
	availabilityService AvailabilitySvc
	appointmentService  AppointmentSvc
	userService         UserSvc
	orderService        OrderSvc
}

func NewHandler(
	catalogService CatalogSvc,
	availabilityService AvailabilitySvc,
	appointmentService AppointmentSvc,
	userService UserSvc,
	orderService OrderSvc,
) *Handler {
	return &Handler{
		catalogService:      catalogService,
		availabilityService: availabilityService,
		appointmentService:  appointmentService,
		userService:         userService,
		orderService:        orderService,
	}
}

// Catalog

func (h *Handler) CreateService(c *ginext.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), domain.CreateServiceInput{
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(svc))
}

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateProduct(c *ginext.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.catalogService.CreateProduct(c.Request.Context(), domain.CreateProductInput{
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

func (h *Handler) ListProducts(c *ginext.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ToProductResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	raw := c.Query("date")
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availabilityService.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Date: raw, Slots: slots})
}

// Appointments

func (h *Handler) BookAppointment(c *ginext.Context) {
	var req dto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date, expected YYYY-MM-DD",
		})
		return
	}

	a, err := h.appointmentService.Book(c.Request.Context(), domain.BookAppointmentInput{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		Date:      date,
		Slot:      req.Slot,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(a))
}

func (h *Handler) CancelAppointment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	a, err := h.appointmentService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

func (h *Handler) RescheduleAppointment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date, expected YYYY-MM-DD",
		})
		return
	}

	a, err := h.appointmentService.Reschedule(c.Request.Context(), id, date, req.Slot)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(a))
}

func (h *Handler) GetUserAppointments(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	appointments, err := h.appointmentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		resp = append(resp, dto.ToUserAppointmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Orders

func (h *Handler) Checkout(c *ginext.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	lines := make([]domain.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.Checkout(c.Request.Context(), req.UserID, lines)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) GetUserOrders(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	orders, err := h.orderService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrNotScheduled),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrIncompleteInput),
		errors.Is(err, domain.ErrPastSlot),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "operation failed"})
	}
}
