package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
)

// Reservation dates are calendar dates (UTC midnight), both ends inclusive.
// PriceCents is snapshotted from the tool's daily rate at creation and never
// recomputed.
type Reservation struct {
	ID          int32             `json:"id"`
	CustomerID  string            `json:"customer_id"`
	ToolID      int32             `json:"tool_id"`
	Description string            `json:"description"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	PriceCents  int32             `json:"price_cents"`
	Status      ReservationStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}

// ReservationDetail is the denormalized projection returned by list reads.
type ReservationDetail struct {
	Reservation
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ToolName      string `json:"tool_name"`
	BrandName     string `json:"brand_name"`
	CategoryName  string `json:"category_name"`
}

// ConfirmationEvent is the payload handed to the notification gateway when a
// reservation transitions to CONFIRMED. Formatting and delivery are the
// gateway's problem.
type ConfirmationEvent struct {
	ReservationID int32
	CustomerName  string
	CustomerEmail string
	ToolName      string
	BrandName     string
	CategoryName  string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	PriceCents    int32
}

// Overlaps reports whether the interval [start, end] intersects the existing
// interval [existingStart, existingEnd]. Intervals are closed: reservations
// that merely touch at an endpoint date still conflict. The three clauses
// cover left overlap, right overlap, and the candidate enclosing the
// existing interval.
func Overlaps(existingStart, existingEnd, start, end time.Time) bool {
	if !existingStart.After(start) && !existingEnd.Before(start) {
		return true
	}
	if !existingStart.After(end) && !existingEnd.Before(end) {
		return true
	}
	if !start.After(existingStart) && !end.Before(existingEnd) {
		return true
	}
	return false
}
