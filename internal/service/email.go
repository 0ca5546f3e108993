package service

import (
	"context"
	"fmt"
	"time"

	"council-rental-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendSanctionNotification(ctx context.Context, email, name string, sanction domain.SanctionType, endDate *time.Time) error {
	subject := "Equipment rental sanction notice"
	body := fmt.Sprintf("Hello %s,\n\nA sanction has been applied to your equipment rental account: %s.", name, sanctionLabel(sanction))
	if endDate != nil {
		body += fmt.Sprintf("\nThe sanction is in effect until %s.", endDate.Format("2006-01-02"))
	}
	body += "\n\nIf you believe this is a mistake, please contact the student council office.\n\nStudent Council"

	return s.send(email, name, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, itemName string, overdueDays int32) error {
	subject := fmt.Sprintf("Overdue rental: %s", itemName)
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s is %d day(s) overdue. Penalty points accrue daily until the item is returned.\n\nStudent Council", name, itemName, overdueDays)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func sanctionLabel(s domain.SanctionType) string {
	switch s {
	case domain.SanctionWarning:
		return "warning"
	case domain.SanctionSuspension1Month:
		return "1 month rental suspension"
	case domain.SanctionSuspension3Month:
		return "3 month rental suspension"
	case domain.SanctionPermanentBan:
		return "permanent rental ban"
	default:
		return string(s)
	}
}
