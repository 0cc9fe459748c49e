// File: ridelink/services/booking/service.go
package booking

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ridelink/database/repository"
	"ridelink/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService creates, lists and cancels bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, vehicleID int, startTime string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

// RouteSynthesizer produces the origin/destination recorded on a booking.
// The search's actual route is not carried through to the booking; the
// upstream system generated placeholder locations instead, and that behavior
// is kept as a pluggable policy.
type RouteSynthesizer func() (origin, destination string)

// DefaultBookingService implements BookingService over an injected catalog
// and booking store.
type DefaultBookingService struct {
	Catalog    repository.VehicleCatalog
	Repo       repository.BookingRepository
	Synthesize RouteSynthesizer
	Logger     *zap.Logger
}

// PincodeRouteSynthesizer generates pincode-style placeholder locations.
func PincodeRouteSynthesizer() (string, string) {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000)),
		fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// CreateBooking looks up the vehicle and appends a new booking to the store.
// The booking holds a copy of the vehicle record, not a live reference.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, vehicleID int, startTime string) (*models.Booking, error) {
	vehicle, ok := s.Catalog.GetByID(vehicleID)
	if !ok {
		return nil, &VehicleNotFoundError{VehicleID: vehicleID}
	}

	synthesize := s.Synthesize
	if synthesize == nil {
		synthesize = PincodeRouteSynthesizer
	}
	origin, destination := synthesize()

	booking := models.Booking{
		ID:          uuid.New().String(),
		Vehicle:     vehicle,
		StartTime:   startTime,
		Origin:      origin,
		Destination: destination,
		BookingTime: time.Now().UTC(),
	}
	s.Repo.Insert(booking)

	s.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.Int("vehicleID", vehicleID),
		zap.String("startTime", startTime),
	)
	return &booking, nil
}

// ListBookings returns a snapshot of the store in insertion order.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.List(), nil
}

// CancelBooking removes the booking with the given id. The store is left
// untouched when the id is unknown.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	if !s.Repo.Delete(bookingID) {
		return &BookingNotFoundError{BookingID: bookingID}
	}
	s.Logger.Info("booking cancelled", zap.String("bookingID", bookingID))
	return nil
}
