package booking

import "fmt"

// VehicleNotFoundError signals a booking attempt against a vehicle id that is
// not in the catalog.
type VehicleNotFoundError struct {
	VehicleID int
}

func (e *VehicleNotFoundError) Error() string {
	return fmt.Sprintf("vehicle %d not found", e.VehicleID)
}

// BookingNotFoundError signals a cancellation for a booking id that does not
// exist in the store.
type BookingNotFoundError struct {
	BookingID string
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}
