package utils

import (
	"fmt"
	"time"

	"toolrental-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC calendar date
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return d, nil
}

// FormatDate renders a calendar date back into yyyy-mm-dd form
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// DaysBetween returns the number of whole elapsed days from start to end.
// Both arguments must be calendar dates (midnight UTC).
func DaysBetween(start, end time.Time) int32 {
	return int32(end.Sub(start).Hours() / 24)
}

// ReservationCost computes the total price of a reservation from the tool's
// daily rate. Duration is the whole-day difference between end and start,
// with a minimum billable duration of one day so a same-day reservation is
// never free. The result is exact in cents.
func ReservationCost(dailyRateCents int32, start, end time.Time) (int32, error) {
	if dailyRateCents < 0 {
		return 0, fmt.Errorf("daily rate must be non-negative, got %d", dailyRateCents)
	}
	if end.Before(start) {
		return 0, domain.ErrInvalidDateRange
	}

	days := DaysBetween(start, end)
	if days < 1 {
		days = 1
	}

	return dailyRateCents * days, nil
}
