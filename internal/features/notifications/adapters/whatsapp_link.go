package adapters

import (
	"context"

	"zctraders-api/internal/core/logger"
	"zctraders-api/internal/features/notifications/domain"

	"go.uber.org/zap"
)

// WhatsAppLinkGateway "sends" WhatsApp messages by constructing a wa.me deep
// link. Nothing goes over the network; the link is what a browser client
// opens, and a WhatsApp Business API adapter would replace this behind the
// same port.
type WhatsAppLinkGateway struct {
	log *zap.Logger
}

// NewWhatsAppLinkGateway creates the link-building WhatsApp gateway.
func NewWhatsAppLinkGateway() *WhatsAppLinkGateway {
	return &WhatsAppLinkGateway{log: logger.Named("whatsapp-link")}
}

// SendWhatsAppMessage builds and logs the wa.me link for the message.
// Link construction cannot fail, so this always reports success.
func (g *WhatsAppLinkGateway) SendWhatsAppMessage(ctx context.Context, phoneNumber, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	msg := domain.Message{
		Channel:   domain.ChannelWhatsApp,
		Recipient: domain.DigitsOnly(phoneNumber),
		Body:      message,
	}

	g.log.Info("WhatsApp link generated",
		zap.String("recipient", msg.Recipient),
		zap.String("url", domain.WhatsAppLink(phoneNumber, message)),
	)

	return true, nil
}
