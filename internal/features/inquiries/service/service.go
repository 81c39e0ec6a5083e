package service

import (
	"context"
	"time"

	"zctraders-api/internal/features/inquiries/domain"
	notifdomain "zctraders-api/internal/features/notifications/domain"
	"zctraders-api/internal/features/notifications/ports"
	"zctraders-api/internal/features/submission"
)

// SuccessWindow is how long the success panel shows before the form
// auto-resets to editing.
const SuccessWindow = 5 * time.Second

// InquiryService runs the inquiry form's submission pipeline.
type InquiryService struct {
	pipeline *submission.Pipeline[domain.Inquiry]
}

// NewInquiryService wires the notification gateways into the shared
// submission pipeline. The machine is passed in so callers control the
// reset scheduling.
func NewInquiryService(email ports.EmailSender, whatsapp ports.WhatsAppSender, machine *submission.Machine) *InquiryService {
	pipeline := submission.NewPipeline("inquiries", submission.Config[domain.Inquiry]{
		Machine: machine,
		Primary: func(ctx context.Context, inq domain.Inquiry) (bool, error) {
			return email.SendInquiryEmail(ctx, notifdomain.InquiryEmail{
				Name:     inq.Name,
				WhatsApp: inq.WhatsApp,
				Email:    inq.Email,
				Category: inq.Category,
				Message:  inq.Message,
			})
		},
		Acknowledge: email.SendAcknowledgmentEmail,
		WhatsApp:    whatsapp.SendWhatsAppMessage,
		Message: func(inq domain.Inquiry) string {
			return notifdomain.InquiryAcknowledgmentMessage(inq.Name)
		},
		AckPolicy: submission.AckAbort,
	})

	return &InquiryService{pipeline: pipeline}
}

// Submit validates the inquiry and runs the notification sequence.
func (s *InquiryService) Submit(ctx context.Context, inq domain.Inquiry) error {
	if err := inq.Validate(); err != nil {
		return err
	}
	return s.pipeline.Submit(ctx, inq)
}

// State returns the form's current submission state.
func (s *InquiryService) State() submission.State {
	return s.pipeline.State()
}
