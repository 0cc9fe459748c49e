package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler for registration.
type HandlerBundle struct {
	// Search endpoints.
	SearchVehiclesHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
}
