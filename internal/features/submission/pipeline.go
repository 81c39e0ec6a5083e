package submission

import (
	"context"
	"errors"
	"fmt"

	"zctraders-api/internal/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrPrimarySendFailed is returned when the company-bound notification
	// reports failure. The caller should offer a retry.
	ErrPrimarySendFailed = errors.New("primary notification was not sent")
	// ErrAcknowledgmentFailed is returned under AckAbort when the customer
	// acknowledgment reports failure.
	ErrAcknowledgmentFailed = errors.New("acknowledgment notification was not sent")
)

// AckPolicy decides what a failed acknowledgment does to an otherwise
// successful submission.
type AckPolicy int

const (
	// AckAbort fails the whole submission when the acknowledgment fails.
	AckAbort AckPolicy = iota
	// AckLogAndContinue records the failure and keeps the success state.
	AckLogAndContinue
)

// Request is the data a form submission carries through the pipeline.
type Request interface {
	// CustomerEmail is the address for the acknowledgment email.
	CustomerEmail() string
	// CustomerWhatsApp is the number for the confirmation WhatsApp message.
	CustomerWhatsApp() string
}

// Config wires one form's notification steps into a Pipeline.
type Config[T Request] struct {
	// Machine is the form's state machine.
	Machine *Machine
	// Primary sends the company-bound notification. Its outcome alone
	// gates the transition to success.
	Primary func(ctx context.Context, req T) (bool, error)
	// Acknowledge sends the customer acknowledgment email.
	Acknowledge func(ctx context.Context, address string) (bool, error)
	// WhatsApp sends the customer WhatsApp message.
	WhatsApp func(ctx context.Context, phoneNumber, message string) (bool, error)
	// Message renders the WhatsApp text for a request.
	Message func(req T) string
	// AckPolicy governs acknowledgment failures. Zero value is AckAbort.
	AckPolicy AckPolicy
}

// Pipeline runs the submit→notify→reset sequence shared by the inquiry and
// order forms: primary email, acknowledgment email, WhatsApp message, in
// that order, strictly sequential, exactly once each per submission.
type Pipeline[T Request] struct {
	cfg Config[T]
	log *zap.Logger
}

// NewPipeline creates a Pipeline named for logging.
func NewPipeline[T Request](name string, cfg Config[T]) *Pipeline[T] {
	return &Pipeline[T]{
		cfg: cfg,
		log: logger.Named(name),
	}
}

// State exposes the underlying machine state.
func (p *Pipeline[T]) State() State {
	return p.cfg.Machine.State()
}

// Submit runs one submission. On success the machine lands in StateSuccess
// and later auto-reverts; on failure it reverts to StateEditing immediately
// and the returned error says which step refused.
func (p *Pipeline[T]) Submit(ctx context.Context, req T) error {
	if err := p.cfg.Machine.Begin(); err != nil {
		return err
	}

	traceID := uuid.NewString()
	log := p.log.With(zap.String("submission_id", traceID))
	log.Info("Submission started")

	ok, err := p.cfg.Primary(ctx, req)
	if err != nil {
		p.cfg.Machine.Fail()
		log.Error("Primary send errored", zap.Error(err))
		return fmt.Errorf("primary send: %w", err)
	}
	if !ok {
		p.cfg.Machine.Fail()
		log.Warn("Primary send reported failure")
		return ErrPrimarySendFailed
	}

	ackOK, ackErr := p.cfg.Acknowledge(ctx, req.CustomerEmail())
	if ackErr != nil || !ackOK {
		if p.cfg.AckPolicy == AckAbort {
			p.cfg.Machine.Fail()
			log.Error("Acknowledgment send failed, aborting submission", zap.Error(ackErr))
			if ackErr != nil {
				return fmt.Errorf("acknowledgment send: %w", ackErr)
			}
			return ErrAcknowledgmentFailed
		}
		log.Warn("Acknowledgment send failed, continuing", zap.Error(ackErr))
	}

	waOK, waErr := p.cfg.WhatsApp(ctx, req.CustomerWhatsApp(), p.cfg.Message(req))
	if waErr != nil || !waOK {
		// WhatsApp outcome never gates success; no partial-failure state
		// is surfaced to the user.
		log.Warn("WhatsApp send failed", zap.Error(waErr))
	}

	p.cfg.Machine.Succeed()
	log.Info("Submission succeeded")
	return nil
}
