package adapters

import (
	"context"
	"fmt"

	"zctraders-api/internal/core/config"
	"zctraders-api/internal/core/logger"
	"zctraders-api/internal/features/notifications/domain"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPEmailGateway delivers the same three emails as the stub through a real
// SMTP server. It is selected at startup when SMTP_HOST is configured.
type SMTPEmailGateway struct {
	dialer       *gomail.Dialer
	from         string
	companyInbox string
	log          *zap.Logger
}

// NewSMTPEmailGateway creates an SMTP-backed email gateway. Company-bound
// mail (inquiries, orders) goes to companyInbox; acknowledgments go to the
// customer address passed per call.
func NewSMTPEmailGateway(cfg config.SMTPConfig, companyInbox string) *SMTPEmailGateway {
	return &SMTPEmailGateway{
		dialer:       gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:         cfg.User,
		companyInbox: companyInbox,
		log:          logger.Named("email-smtp"),
	}
}

// SendInquiryEmail delivers an inquiry to the company inbox.
func (g *SMTPEmailGateway) SendInquiryEmail(ctx context.Context, email domain.InquiryEmail) (bool, error) {
	subject := fmt.Sprintf("New Inquiry: %s", email.Category)
	body := fmt.Sprintf(
		"Name: %s\nWhatsApp: %s\nEmail: %s\nCategory: %s\n\n%s\n",
		email.Name, email.WhatsApp, email.Email, email.Category, email.Message,
	)
	return g.deliver(ctx, g.companyInbox, subject, body)
}

// SendOrderEmail delivers an order to the company inbox.
func (g *SMTPEmailGateway) SendOrderEmail(ctx context.Context, email domain.OrderEmail) (bool, error) {
	subject := fmt.Sprintf("New Order %s", email.OrderNumber)
	body := fmt.Sprintf(
		"Order Number: %s\nCustomer: %s\nEmail: %s\nWhatsApp: %s\nProduct: %s\nQuantity: %d\nPayment Method: %s\n\nDelivery Address:\n%s\n",
		email.OrderNumber, email.CustomerName, email.Email, email.WhatsApp,
		email.Product, email.Quantity, email.PaymentMethod, email.DeliveryAddress,
	)
	return g.deliver(ctx, g.companyInbox, subject, body)
}

// SendAcknowledgmentEmail delivers a confirmation to the customer.
func (g *SMTPEmailGateway) SendAcknowledgmentEmail(ctx context.Context, address string) (bool, error) {
	body := "Thank you for contacting ZC Traders.\n\n" +
		"We have received your submission and our team will get back to you within 24 hours.\n\n" +
		"ZC Traders - Your Global Sourcing Partner\n"
	return g.deliver(ctx, address, "We received your submission", body)
}

func (g *SMTPEmailGateway) deliver(ctx context.Context, to, subject, body string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", g.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := g.dialer.DialAndSend(m); err != nil {
		g.log.Error("SMTP delivery failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return false, fmt.Errorf("smtp delivery to %s: %w", to, err)
	}

	g.log.Info("Email delivered", zap.String("to", to), zap.String("subject", subject))
	return true, nil
}
