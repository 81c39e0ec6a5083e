package adapters

import (
	"context"
	"time"

	"zctraders-api/internal/core/identifier"
	"zctraders-api/internal/core/logger"
	"zctraders-api/internal/features/notifications/domain"

	"go.uber.org/zap"
)

// DefaultSendDelay approximates the latency of a real email provider call.
const DefaultSendDelay = time.Second

// StubEmailGateway simulates outbound email without a transport. Every send
// sleeps for a fixed delay and reports success; the failure paths exist for
// interface symmetry and are unreachable in the stub itself.
type StubEmailGateway struct {
	delay time.Duration
	ids   *identifier.Generator
	log   *zap.Logger
}

// NewStubEmailGateway creates a simulated email gateway. The delay is a
// constructor argument only so tests can shrink it.
func NewStubEmailGateway(delay time.Duration, ids *identifier.Generator) *StubEmailGateway {
	return &StubEmailGateway{
		delay: delay,
		ids:   ids,
		log:   logger.Named("email-stub"),
	}
}

// SendInquiryEmail simulates delivering an inquiry to the company inbox.
func (g *StubEmailGateway) SendInquiryEmail(ctx context.Context, email domain.InquiryEmail) (bool, error) {
	g.log.Info("Sending inquiry email",
		zap.String("name", email.Name),
		zap.String("email", email.Email),
		zap.String("category", email.Category),
	)

	if err := g.pause(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// SendOrderEmail simulates delivering an order to the company inbox,
// assigning an order number when the payload carries none.
func (g *StubEmailGateway) SendOrderEmail(ctx context.Context, email domain.OrderEmail) (bool, error) {
	if email.OrderNumber == "" {
		email.OrderNumber = g.ids.OrderNumber()
	}

	g.log.Info("Sending order email",
		zap.String("order_number", email.OrderNumber),
		zap.String("customer", email.CustomerName),
		zap.String("product", email.Product),
		zap.Int("quantity", email.Quantity),
	)

	if err := g.pause(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// SendAcknowledgmentEmail simulates the customer-facing confirmation email.
func (g *StubEmailGateway) SendAcknowledgmentEmail(ctx context.Context, address string) (bool, error) {
	g.log.Info("Sending acknowledgment email", zap.String("to", address))

	if err := g.pause(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// pause blocks for the configured delay or until the context is canceled.
func (g *StubEmailGateway) pause(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(g.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
