package ports

import (
	"context"

	"zctraders-api/internal/features/notifications/domain"
)

// EmailSender is the outbound email gateway port. The simulated adapter is
// the default; a transactional provider (SMTP, SendGrid, ...) can be
// substituted without touching the submission services.
type EmailSender interface {
	// SendInquiryEmail delivers an inquiry to the company inbox.
	// Returns false only on an internal gateway fault.
	SendInquiryEmail(ctx context.Context, email domain.InquiryEmail) (bool, error)

	// SendOrderEmail delivers an order to the company inbox. If the payload
	// carries no order number the gateway assigns one.
	SendOrderEmail(ctx context.Context, email domain.OrderEmail) (bool, error)

	// SendAcknowledgmentEmail delivers a receipt confirmation to the
	// customer address. Failure is reported explicitly so callers can
	// decide whether it aborts the submission.
	SendAcknowledgmentEmail(ctx context.Context, address string) (bool, error)
}

// WhatsAppSender is the outbound WhatsApp gateway port.
type WhatsAppSender interface {
	// SendWhatsAppMessage composes a wa.me link for the number and message
	// and dispatches it. The link adapter only constructs and logs the
	// link; a WhatsApp Business API adapter would deliver for real.
	SendWhatsAppMessage(ctx context.Context, phoneNumber, message string) (bool, error)
}
