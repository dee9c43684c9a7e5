package service

import (
	"context"
	"sync"
	"time"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/logger"
)

const deliveryTimeout = 30 * time.Second

// emailDispatcher sends confirmation events on a background goroutine so the
// confirm path never blocks on the mail provider. Each Dispatch returns a
// buffered channel holding exactly one result; callers that do not care about
// delivery can drop the channel without leaking the goroutine.
type emailDispatcher struct {
	emailSvc EmailService
	wg       sync.WaitGroup
}

func NewConfirmationDispatcher(emailSvc EmailService) *emailDispatcher {
	return &emailDispatcher{emailSvc: emailSvc}
}

func (d *emailDispatcher) Dispatch(event domain.ConfirmationEvent) <-chan error {
	result := make(chan error, 1)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		err := d.emailSvc.SendReservationConfirmation(ctx, event)
		if err != nil {
			logger.Error("confirmation delivery failed",
				"reservation_id", event.ReservationID,
				"customer_email", event.CustomerEmail,
				"error", err)
		}
		result <- err
		close(result)
	}()
	return result
}

// Wait blocks until all in-flight deliveries finish. Used on shutdown.
func (d *emailDispatcher) Wait() {
	d.wg.Wait()
}
