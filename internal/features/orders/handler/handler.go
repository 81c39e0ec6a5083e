package handler

import (
	"errors"
	"net/http"

	"zctraders-api/internal/core/form"
	"zctraders-api/internal/core/logger"
	"zctraders-api/internal/features/orders/domain"
	"zctraders-api/internal/features/orders/service"
	"zctraders-api/internal/features/submission"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for the order form.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  []form.FieldError `json:"fields,omitempty"`
	RayID   string            `json:"ray_id"`
}

// PlacedResponse is returned after a successful order submission.
type PlacedResponse struct {
	Message     string `json:"message"`
	OrderNumber string `json:"order_number"`
}

// StatusResponse reports the form state and, during the success window,
// the order number being displayed.
type StatusResponse struct {
	State       submission.State `json:"state"`
	OrderNumber string           `json:"order_number,omitempty"`
}

// Place handles POST /orders.
// @Summary Place an order
// @Description Validates the order form, assigns an order number, and runs the notification sequence.
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body domain.Order true "Order form fields"
// @Success 200 {object} PlacedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	rayID := requestRayID(c)

	var order domain.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	number, err := h.service.Place(c.Context(), order)
	if err != nil {
		return respondPlaceError(c, rayID, err)
	}

	return c.Status(http.StatusOK).JSON(PlacedResponse{
		Message:     "Order placed successfully",
		OrderNumber: number,
	})
}

// Status handles GET /orders/status.
// @Summary Order form state
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /orders/status [get]
func (h *OrderHandler) Status(c *fiber.Ctx) error {
	state, number := h.service.Status()
	return c.Status(http.StatusOK).JSON(StatusResponse{
		State:       state,
		OrderNumber: number,
	})
}

func requestRayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

func respondPlaceError(c *fiber.Ctx, rayID string, err error) error {
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
			Message: "An order is already being processed",
			RayID:   rayID,
		})
	}

	logger.Get().Error("Order submission failed",
		zap.String("ray_id", rayID),
		zap.Error(err),
	)

	if errors.Is(err, submission.ErrPrimarySendFailed) || errors.Is(err, submission.ErrAcknowledgmentFailed) {
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: "Failed to submit order. Please try again.",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "An error occurred. Please try again.",
		RayID:   rayID,
	})
}
