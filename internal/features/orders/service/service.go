package service

import (
	"context"
	"sync"
	"time"

	"zctraders-api/internal/core/identifier"
	"zctraders-api/internal/core/logger"
	notifdomain "zctraders-api/internal/features/notifications/domain"
	notifports "zctraders-api/internal/features/notifications/ports"
	"zctraders-api/internal/features/orders/domain"
	"zctraders-api/internal/features/orders/ports"
	"zctraders-api/internal/features/submission"

	"go.uber.org/zap"
)

// SuccessWindow is how long the success panel (with the order number)
// shows before the form auto-resets to editing.
const SuccessWindow = 7 * time.Second

// placedOrder is an order with the number assigned at submission time.
type placedOrder struct {
	domain.Order
	Number string
}

// OrderService runs the order form's submission pipeline: number
// generation, notification sequence, and ledger recording.
type OrderService struct {
	pipeline *submission.Pipeline[placedOrder]
	ids      *identifier.Generator
	ledger   ports.OrderLedger
	log      *zap.Logger

	mu         sync.Mutex
	lastNumber string
}

// NewOrderService wires the gateways, generator and ledger together.
func NewOrderService(
	email notifports.EmailSender,
	whatsapp notifports.WhatsAppSender,
	ids *identifier.Generator,
	ledger ports.OrderLedger,
	machine *submission.Machine,
) *OrderService {
	pipeline := submission.NewPipeline("orders", submission.Config[placedOrder]{
		Machine: machine,
		Primary: func(ctx context.Context, po placedOrder) (bool, error) {
			return email.SendOrderEmail(ctx, notifdomain.OrderEmail{
				OrderNumber:     po.Number,
				CustomerName:    po.CustomerName,
				Email:           po.Email,
				WhatsApp:        po.WhatsApp,
				Product:         po.ProductLabel(),
				Quantity:        po.Quantity,
				PaymentMethod:   po.PaymentMethod,
				DeliveryAddress: po.EmailDeliveryAddress(),
			})
		},
		Acknowledge: email.SendAcknowledgmentEmail,
		WhatsApp:    whatsapp.SendWhatsAppMessage,
		Message: func(po placedOrder) string {
			return notifdomain.OrderConfirmationMessage(po.Number, po.CustomerName)
		},
		AckPolicy: submission.AckAbort,
	})

	return &OrderService{
		pipeline: pipeline,
		ids:      ids,
		ledger:   ledger,
		log:      logger.Named("orders"),
	}
}

// Place validates the order, assigns an order number, and runs the
// notification sequence. On success the number is returned, shown while the
// form is in its success window, and recorded on the ledger.
func (s *OrderService) Place(ctx context.Context, order domain.Order) (string, error) {
	if err := order.Validate(); err != nil {
		return "", err
	}

	number := s.ids.OrderNumber()

	if err := s.pipeline.Submit(ctx, placedOrder{Order: order, Number: number}); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.lastNumber = number
	s.mu.Unlock()

	// Ledger recording is best-effort; the customer already has the number.
	if err := s.ledger.Record(ctx, number); err != nil {
		s.log.Warn("Failed to record order number on ledger",
			zap.String("order_number", number),
			zap.Error(err),
		)
	}

	return number, nil
}

// Status returns the form state and, while in the success window, the order
// number being displayed.
func (s *OrderService) Status() (submission.State, string) {
	state := s.pipeline.State()
	if state != submission.StateSuccess {
		return state, ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return state, s.lastNumber
}
