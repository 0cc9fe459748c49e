package repository

import (
	"sync"

	"ridelink/models"
)

// BookingRepository stores booking records for the lifetime of the process.
type BookingRepository interface {
	// Insert appends a booking to the store.
	Insert(b models.Booking)
	// List returns all bookings in insertion order.
	List() []models.Booking
	// Delete removes the booking with the given id and reports whether it existed.
	Delete(id string) bool
	// Count returns the number of stored bookings.
	Count() int
}

// MemoryBookingRepo is a mutex-guarded in-memory BookingRepository.
// Bookings do not survive a process restart.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

// NewMemoryBookingRepo returns an empty booking store.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) Insert(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
}

func (r *MemoryBookingRepo) List() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *MemoryBookingRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return true
		}
	}
	return false
}

func (r *MemoryBookingRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}
