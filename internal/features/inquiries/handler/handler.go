package handler

import (
	"errors"
	"net/http"

	"zctraders-api/internal/core/form"
	"zctraders-api/internal/core/logger"
	"zctraders-api/internal/features/inquiries/domain"
	"zctraders-api/internal/features/inquiries/service"
	"zctraders-api/internal/features/submission"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InquiryHandler handles HTTP requests for the inquiry form.
type InquiryHandler struct {
	service *service.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(s *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: s}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Fields lists the failing form fields, when validation blocked the submission.
	Fields []form.FieldError `json:"fields,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// StatusResponse reports the current form state.
type StatusResponse struct {
	State submission.State `json:"state"`
}

// Submit handles POST /inquiries.
// @Summary Submit an inquiry
// @Description Validates the inquiry form and runs the notification sequence.
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param inquiry body domain.Inquiry true "Inquiry form fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /inquiries [post]
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	rayID := requestRayID(c)

	var inq domain.Inquiry
	if err := c.BodyParser(&inq); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	if err := h.service.Submit(c.Context(), inq); err != nil {
		return respondSubmitError(c, rayID, err, "Failed to send inquiry. Please try again.")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Inquiry submitted successfully",
	})
}

// Status handles GET /inquiries/status.
// @Summary Inquiry form state
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /inquiries/status [get]
func (h *InquiryHandler) Status(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(StatusResponse{State: h.service.State()})
}

// requestRayID extracts the request ID set by the requestid middleware.
func requestRayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// respondSubmitError maps submission errors onto HTTP responses.
func respondSubmitError(c *fiber.Ctx, rayID string, err error, retryMessage string) error {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Validation failed",
			Fields:  verr.Fields,
			RayID:   rayID,
		})
	}

	if errors.Is(err, submission.ErrSubmissionInFlight) || errors.Is(err, submission.ErrAwaitingReset) {
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: "A submission is already being processed",
			RayID:   rayID,
		})
	}

	logger.Get().Error("Submission failed",
		zap.String("ray_id", rayID),
		zap.Error(err),
	)

	if errors.Is(err, submission.ErrPrimarySendFailed) || errors.Is(err, submission.ErrAcknowledgmentFailed) {
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: retryMessage,
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "An error occurred. Please try again.",
		RayID:   rayID,
	})
}
