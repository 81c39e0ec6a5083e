package handler

import (
	"errors"
	"net/http"

	"zctraders-api/internal/core/form"
	"zctraders-api/internal/core/logger"
	"zctraders-api/internal/features/receipts/domain"
	"zctraders-api/internal/features/receipts/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReceiptHandler handles HTTP requests for the payment-receipt page.
type ReceiptHandler struct {
	service *service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(s *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{service: s}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  []form.FieldError `json:"fields,omitempty"`
	RayID   string            `json:"ray_id"`
}

// SubmittedResponse is returned after a forwarded receipt.
type SubmittedResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// LinkResponse carries a wa.me link.
type LinkResponse struct {
	URL string `json:"url"`
}

// Submit handles POST /receipts.
// @Summary Submit a payment receipt
// @Description Validates the receipt and forwards it to the company WhatsApp number.
// @Tags Receipts
// @Accept json
// @Produce json
// @Param receipt body domain.Receipt true "Receipt form fields"
// @Success 200 {object} SubmittedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Submit(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	var receipt domain.Receipt
	if err := c.BodyParser(&receipt); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	link, err := h.service.Submit(c.Context(), receipt)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Validation failed",
				Fields:  verr.Fields,
				RayID:   rayID,
			})
		}

		logger.Get().Error("Receipt submission failed",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		status := http.StatusInternalServerError
		msg := "Failed to submit receipt. Please try again or contact us directly."
		if errors.Is(err, service.ErrReceiptNotSent) {
			status = http.StatusBadGateway
		}

		return c.Status(status).JSON(ErrorResponse{
			Message: msg,
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(SubmittedResponse{
		Message:     "Payment receipt submitted successfully! We will verify and confirm your payment within 24 hours.",
		WhatsAppURL: link,
	})
}

// DirectChatLink handles GET /receipts/whatsapp-link.
// @Summary Direct company chat link
// @Description Returns a wa.me link opening a company chat with a fixed greeting.
// @Tags Receipts
// @Produce json
// @Success 200 {object} LinkResponse
// @Router /receipts/whatsapp-link [get]
func (h *ReceiptHandler) DirectChatLink(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(LinkResponse{URL: h.service.DirectChatLink()})
}
