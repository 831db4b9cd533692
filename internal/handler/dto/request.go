package dto

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Stock       int    `json:"stock" binding:"gte=0"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CreateUserRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone" binding:"required"`
	Address        *string `json:"address"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type BookAppointmentRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	Slot      string `json:"slot" binding:"required"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

type CheckoutRequest struct {
	UserID string         `json:"user_id" binding:"required,uuid"`
	Items  []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

type CheckoutItem struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}
