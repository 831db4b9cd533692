package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateService(c *ginext.Context)
	ListServices(c *ginext.Context)
	CreateProduct(c *ginext.Context)
	ListProducts(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	BookAppointment(c *ginext.Context)
	CancelAppointment(c *ginext.Context)
	RescheduleAppointment(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserAppointments(c *ginext.Context)
	GetUserOrders(c *ginext.Context)
	Checkout(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/services", h.ListServices)
		api.POST("/services", h.CreateService)
		api.GET("/products", h.ListProducts)
		api.POST("/products", h.CreateProduct)

		// Booking
		api.GET("/availability", h.GetAvailability)
		api.POST("/appointments", h.BookAppointment)
		api.POST("/appointments/:id/cancel", h.CancelAppointment)
		api.POST("/appointments/:id/reschedule", h.RescheduleAppointment)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/appointments", h.GetUserAppointments)
		api.GET("/users/:id/orders", h.GetUserOrders)

		// Checkout
		api.POST("/checkout", h.Checkout)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
