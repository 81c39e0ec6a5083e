package service

import (
	"context"
	"errors"
	"fmt"

	"zctraders-api/internal/core/logger"
	notifdomain "zctraders-api/internal/features/notifications/domain"
	notifports "zctraders-api/internal/features/notifications/ports"
	ordersports "zctraders-api/internal/features/orders/ports"
	"zctraders-api/internal/features/receipts/domain"

	"go.uber.org/zap"
)

// ErrReceiptNotSent is returned when the company WhatsApp send fails.
var ErrReceiptNotSent = errors.New("payment receipt was not sent")

// ReceiptService forwards payment receipts to the company WhatsApp number.
// Unlike the inquiry and order forms there is no submission machine: a
// receipt is a one-shot action with no success window.
type ReceiptService struct {
	whatsapp      notifports.WhatsAppSender
	ledger        ordersports.OrderLedger
	companyNumber string
	log           *zap.Logger
}

// NewReceiptService creates a ReceiptService targeting the company number.
func NewReceiptService(whatsapp notifports.WhatsAppSender, ledger ordersports.OrderLedger, companyNumber string) *ReceiptService {
	return &ReceiptService{
		whatsapp:      whatsapp,
		ledger:        ledger,
		companyNumber: companyNumber,
		log:           logger.Named("receipts"),
	}
}

// Submit validates the receipt and sends the verification message to the
// company. The returned wa.me link is what a browser client opens. The order
// number is checked against the ledger but only advisory: an unknown number
// is logged, never rejected.
func (s *ReceiptService) Submit(ctx context.Context, receipt domain.Receipt) (string, error) {
	if err := receipt.Validate(); err != nil {
		return "", err
	}

	known, err := s.ledger.Exists(ctx, receipt.OrderNumber)
	if err != nil {
		s.log.Warn("Order-number ledger lookup failed",
			zap.String("order_number", receipt.OrderNumber),
			zap.Error(err),
		)
	} else if !known {
		s.log.Warn("Receipt references an order number not on the ledger",
			zap.String("order_number", receipt.OrderNumber),
		)
	}

	message := receipt.SubmissionMessage()

	ok, err := s.whatsapp.SendWhatsAppMessage(ctx, s.companyNumber, message)
	if err != nil {
		return "", fmt.Errorf("receipt send: %w", err)
	}
	if !ok {
		return "", ErrReceiptNotSent
	}

	return notifdomain.WhatsAppLink(s.companyNumber, message), nil
}

// DirectChatLink returns the wa.me link that opens a company chat with the
// fixed greeting. Independent of Submit; no validation, no ledger check.
func (s *ReceiptService) DirectChatLink() string {
	return notifdomain.WhatsAppLink(s.companyNumber, domain.DirectChatGreeting)
}
