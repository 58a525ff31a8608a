package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rental-backend/internal/domain"
	"rental-backend/internal/logger"
	"rental-backend/internal/metrics"
	"rental-backend/internal/pricing"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid backed sender, or nil when apiKey is
// empty so callers skip mail entirely.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	if apiKey == "" {
		return nil
	}
	return &emailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *emailService) SendOrderConfirmation(ctx context.Context, rental *domain.Rental, breakdown *pricing.Breakdown) error {
	message := newOrderConfirmation(mail.NewEmail(s.fromName, s.fromEmail), rental, breakdown)

	logger.ExternalServiceCall("sendgrid", "SendOrderConfirmation", "rentalID", rental.ID)
	response, err := sendgrid.NewSendClient(s.apiKey).SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "SendOrderConfirmation", err, "rentalID", rental.ID)
	if err != nil {
		metrics.EmailsSentTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}
	metrics.EmailsSentTotal.WithLabelValues("sent").Inc()
	return nil
}

func newOrderConfirmation(from *mail.Email, rental *domain.Rental, b *pricing.Breakdown) *mail.SGMailV3 {
	c := rental.Customer
	subject := fmt.Sprintf("Rental confirmation #%d", rental.ID)

	var text strings.Builder
	fmt.Fprintf(&text, "Dear %s,\n\n", c.FullName())
	fmt.Fprintf(&text, "Thank you for your rental from %s to %s.\n\n", rental.StartDate, rental.EndDate)
	for _, g := range b.Items {
		fmt.Fprintf(&text, "%dx %s (%d days): %s\n", g.Count, g.ItemNumber, g.Days, g.Total.StringFixed(2))
	}
	for _, sl := range b.Services {
		fmt.Fprintf(&text, "%s: %s\n", sl.Label, sl.Total.StringFixed(2))
	}
	fmt.Fprintf(&text, "\nSubtotal: %s\nVAT: %s\nDeposit: %s\nTotal: %s\n",
		b.Subtotal.StringFixed(2), b.VAT.StringFixed(2), b.Deposit.StringFixed(2), b.Total.StringFixed(2))
	text.WriteString("\nPayment status: pending\n")

	body := "<pre>" + html.EscapeString(text.String()) + "</pre>"
	return mail.NewSingleEmail(from, subject, mail.NewEmail(c.FullName(), c.Email), text.String(), body)
}
