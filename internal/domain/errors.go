package domain

import "errors"

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrToolNotFound        = errors.New("tool not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotFound            = errors.New("record not found")

	// ErrInvalidDateRange is returned before any store access when a
	// reservation's start date falls after its end date, or a date fails
	// to parse.
	ErrInvalidDateRange = errors.New("start date must be on or before end date")

	// ErrReservationConflict is returned whenever the requested interval
	// overlaps an existing pending or confirmed reservation, including when
	// the overlap is only discovered at commit time by a concurrent winner.
	ErrReservationConflict = errors.New("tool already reserved for this date range")

	ErrEmailTaken = errors.New("email already registered")
)
