package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID          string    `json:"id"`          // Unique booking identifier (UUID)
	Vehicle     Vehicle   `json:"vehicle"`     // Snapshot of the vehicle at booking time
	StartTime   string    `json:"startTime"`   // Requested start time in "HH:MM" format
	Origin      string    `json:"origin"`      // Pickup location
	Destination string    `json:"destination"` // Drop-off location
	BookingTime time.Time `json:"bookingTime"` // Timestamp when the booking was created
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	VehicleID int    `json:"vehicleId" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
}
