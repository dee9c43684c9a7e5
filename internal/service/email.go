package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/utils"
)

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, event domain.ConfirmationEvent) error {
	subject := fmt.Sprintf("Reservation #%d confirmed", event.ReservationID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation has been confirmed.\n\nTool: %s (%s, %s)\nPeriod: %s to %s\nTotal: %s\n\nThank you for renting with us.",
		event.CustomerName,
		event.ToolName, event.BrandName, event.CategoryName,
		utils.FormatDate(event.StartDate), utils.FormatDate(event.EndDate),
		formatCents(event.PriceCents),
	)
	return s.send(ctx, event.CustomerEmail, event.CustomerName, subject, body)
}

func (s *emailService) SendPendingReservationReminder(ctx context.Context, detail domain.ReservationDetail) error {
	subject := fmt.Sprintf("Reservation #%d is awaiting confirmation", detail.ID)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation for %s (%s to %s) is still pending. Confirm it to keep your dates, or cancel it to free them up.",
		detail.CustomerName,
		detail.ToolName,
		utils.FormatDate(detail.StartDate), utils.FormatDate(detail.EndDate),
	)
	return s.send(ctx, detail.CustomerEmail, detail.CustomerName, subject, body)
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmailPlainText(from, subject, to, body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
