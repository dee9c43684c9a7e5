package jobs

import (
	"context"
	"time"

	"toolrental-backend/internal/logger"
)

// SendPendingReservationReminders nudges customers whose reservations have
// sat in PENDING longer than the configured age. Delivery failures are logged
// and skipped; the remaining reminders still go out.
func (jr *JobRunner) SendPendingReservationReminders() {
	jr.runWithRecovery("SendPendingReservationReminders", func() {
		ctx := context.Background()

		age := time.Duration(jr.config.Scheduler.ReminderAgeHours) * time.Hour
		cutoff := time.Now().UTC().Add(-age)

		pending, err := jr.store.ListPendingOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to load pending reservations", "error", err)
			return
		}

		sent := 0
		for _, detail := range pending {
			if err := jr.emailSvc.SendPendingReservationReminder(ctx, detail); err != nil {
				logger.Error("Failed to send reservation reminder",
					"reservation_id", detail.ID,
					"customer_email", detail.CustomerEmail,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent pending reservation reminders", "pending", len(pending), "sent", sent)
	})
}
