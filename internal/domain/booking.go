package domain

import (
	"time"

	"github.com/avdeevlv/barber-booking-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a client appointment with the barber.
// Service name and price are denormalized at creation time so the
// history stays correct if the catalog changes later. Bookings are
// never physically deleted: cancellation and completion are terminal
// statuses kept for history.
type Booking struct {
	ID          int64
	UserID      int64
	ClientName  string
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	ServiceName  string
	ServicePrice float64
	Notes        *string

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	// CreatedBy distinguishes client self-service bookings from
	// bookings entered by the admin on a client's behalf.
	CreatedBy int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking currently occupies its interval
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CanBeCompleted returns true if the booking can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusActive
}

// CanBeRescheduled returns true if date/time/service may still be changed.
// Completed and cancelled bookings are frozen except for notes.
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusActive
}

// DurationMinutes returns the booked interval length in minutes
func (b *Booking) DurationMinutes() int {
	return b.EndTime.Minutes() - b.StartTime.Minutes()
}

// BookingsFilter фильтр для выборки бронирований за период.
// StartDate == EndDate означает выборку на конкретную дату.
type BookingsFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool // включать ли завершенные и отмененные
}
